package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, c Color) {
	for x := range b.width {
		b.rows[y][x] = c
	}
}

func TestCanPlace(t *testing.T) {
	b := newBoard(10, 20)

	t.Run("every orientation inside an empty board", func(t *testing.T) {
		for _, base := range Catalog() {
			shape := base
			for range 4 {
				for y := 2; y < 18; y++ {
					for x := 2; x < 8; x++ {
						assert.True(t, b.CanPlace(shape, Point{X: x, Y: y}), "%s at %d,%d", shape.Kind, x, y)
					}
				}
				shape.Rotate()
			}
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		i := Catalog()[0]
		assert.False(t, b.CanPlace(i, Point{X: 0, Y: 1}), "above the top")
		assert.False(t, b.CanPlace(i, Point{X: 0, Y: 19}), "below the bottom")
		assert.False(t, b.CanPlace(i, Point{X: -1, Y: 5}), "left of column 0")
		assert.False(t, b.CanPlace(i, Point{X: 10, Y: 5}), "right of the last column")
		assert.True(t, b.CanPlace(i, Point{X: 9, Y: 18}))
	})

	t.Run("occupied", func(t *testing.T) {
		b := newBoard(10, 20)
		b.set(Point{X: 4, Y: 7}, ColorGreen)
		tShape := Catalog()[4]

		assert.False(t, b.CanPlace(tShape, Point{X: 4, Y: 6}))
		assert.True(t, b.CanPlace(tShape, Point{X: 6, Y: 6}))
	})
}

func TestIsRowFull(t *testing.T) {
	b := newBoard(4, 6)
	fillRow(b, 5, ColorRed)
	b.rows[4][0] = ColorRed

	assert.True(t, b.IsRowFull(5))
	assert.False(t, b.IsRowFull(4))
	assert.False(t, b.IsRowFull(0))
	assert.False(t, b.IsRowFull(6))
	assert.False(t, b.IsRowFull(-1))
}

func TestDestroyFullRows(t *testing.T) {
	t.Run("single full row", func(t *testing.T) {
		b := newBoard(4, 6)
		b.rows[1][2] = ColorBlue
		b.rows[2][0] = ColorGreen
		fillRow(b, 3, ColorRed)
		b.rows[4][3] = ColorYellow

		require.Equal(t, 1, b.destroyFullRows())

		assert.Equal(t, []Color{0, 0, 0, 0}, b.rows[0])
		assert.Equal(t, []Color{0, 0, 0, 0}, b.rows[1])
		assert.Equal(t, []Color{0, 0, ColorBlue, 0}, b.rows[2])
		assert.Equal(t, []Color{ColorGreen, 0, 0, 0}, b.rows[3])
		assert.Equal(t, []Color{0, 0, 0, ColorYellow}, b.rows[4])
		assert.Equal(t, []Color{0, 0, 0, 0}, b.rows[5])
	})

	t.Run("separated full rows", func(t *testing.T) {
		b := newBoard(3, 7)
		b.rows[0][0] = ColorBlue
		fillRow(b, 2, ColorRed)
		b.rows[3][1] = ColorGreen
		fillRow(b, 4, ColorRed)
		fillRow(b, 6, ColorRed)
		b.rows[5][2] = ColorYellow

		require.Equal(t, 3, b.destroyFullRows())

		for y := range 3 {
			assert.Equal(t, []Color{0, 0, 0}, b.rows[y], "row %d", y)
		}
		assert.Equal(t, []Color{ColorBlue, 0, 0}, b.rows[3])
		assert.Equal(t, []Color{0, 0, 0}, b.rows[4])
		assert.Equal(t, []Color{0, ColorGreen, 0}, b.rows[5])
		assert.Equal(t, []Color{0, 0, ColorYellow}, b.rows[6])
	})

	t.Run("no full rows", func(t *testing.T) {
		b := newBoard(3, 4)
		b.rows[3][0] = ColorRed
		b.rows[2][1] = ColorRed

		assert.Equal(t, 0, b.destroyFullRows())
		assert.Equal(t, []Color{ColorRed, 0, 0}, b.rows[3])
		assert.Equal(t, []Color{0, ColorRed, 0}, b.rows[2])
	})

	t.Run("whole board", func(t *testing.T) {
		b := newBoard(2, 3)
		for y := range 3 {
			fillRow(b, y, ColorGreen)
		}

		assert.Equal(t, 3, b.destroyFullRows())
		for y := range 3 {
			assert.False(t, b.IsRowFull(y))
		}
	})
}

func TestBoardSettled(t *testing.T) {
	b := newBoard(3, 3)
	b.set(Point{X: 2, Y: 0}, ColorRed)
	b.set(Point{X: 0, Y: 2}, ColorBlue)
	b.set(Point{X: 5, Y: 5}, ColorBlue)

	got := map[Point]Color{}
	for p, c := range b.Settled() {
		got[p] = c
	}
	assert.Equal(t, map[Point]Color{{X: 2, Y: 0}: ColorRed, {X: 0, Y: 2}: ColorBlue}, got)

	c, ok := b.Cell(2, 0)
	assert.True(t, ok)
	assert.Equal(t, ColorRed, c)

	_, ok = b.Cell(1, 1)
	assert.False(t, ok)
	_, ok = b.Cell(-1, 0)
	assert.False(t, ok)
}
