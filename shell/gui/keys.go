package gui

import (
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/input"
)

var keyNames = sync.OnceValue(func() map[string]ebiten.Key {
	names := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		names[strings.ToLower(k.String())] = k
	}
	return names
})

// ResolveKey maps an Ebiten key name such as "A", "ArrowLeft" or "Escape"
// to its key code. Matching ignores case.
func ResolveKey(name string) (input.Key, bool) {
	k, ok := keyNames()[strings.ToLower(name)]
	return input.Key(k), ok
}
