package replay

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/plus3/blockfall/tetris"
)

// Digest hashes everything a player could observe about g: the board, the
// falling piece, the preview, state and score.
func Digest(g *tetris.Game) string {
	h := sha256.New()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	putShape := func(s tetris.Shape) {
		putInt(int(s.Kind))
		for _, o := range s.Offsets {
			putInt(o.DX)
			putInt(o.DY)
		}
	}

	b := g.Board()
	putInt(b.Width())
	putInt(b.Height())
	for y := range b.Height() {
		for x := range b.Width() {
			c, _ := b.Cell(x, y)
			h.Write([]byte{byte(c)})
		}
	}

	falling := g.Falling()
	putShape(falling.Shape)
	putInt(falling.Location.X)
	putInt(falling.Location.Y)
	putInt(int(falling.Color))

	next := g.Next()
	putShape(next.Shape)
	putInt(int(next.Color))

	putInt(int(g.State()))
	putInt(g.Score())

	return hex.EncodeToString(h.Sum(nil)[:12])
}
