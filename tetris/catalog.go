package tetris

import "sync"

// Kind identifies one of the base pieces. The catalog deliberately carries
// five kinds; there are no J or Z pieces.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindS
	KindL
	KindT
)

var kindNames = [...]string{"I", "O", "S", "L", "T"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// catalog is built on first use and never mutated afterwards. Callers only
// ever receive copies.
var catalog = sync.OnceValue(func() [5]Shape {
	return [5]Shape{
		{Kind: KindI, Offsets: [4]Offset{{0, 0}, {0, 1}, {0, -1}, {0, -2}}},
		{Kind: KindO, Offsets: [4]Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{Kind: KindS, Offsets: [4]Offset{{0, 0}, {0, 1}, {-1, 0}, {-1, -1}}},
		{Kind: KindL, Offsets: [4]Offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}}},
		{Kind: KindT, Offsets: [4]Offset{{0, 0}, {0, 1}, {0, -1}, {1, 0}}},
	}
})

// Catalog returns a copy of the base shapes in catalog order.
func Catalog() [5]Shape {
	return catalog()
}
