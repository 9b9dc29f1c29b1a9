package tetris

import "iter"

// Board is the width x height matrix of settled cells. Only the Game that
// owns a board mutates it; the exported methods are read-only.
type Board struct {
	width  int
	height int
	rows   [][]Color
}

func newBoard(width, height int) *Board {
	rows := make([][]Color, height)
	cells := make([]Color, width*height)
	for y := range rows {
		rows[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return &Board{
		width:  width,
		height: height,
		rows:   rows,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Contains reports whether p lies inside the board.
func (b *Board) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.width && p.Y < b.height
}

// Cell returns the color settled at (x, y). The second result is false for
// empty or out-of-range cells.
func (b *Board) Cell(x, y int) (Color, bool) {
	if !b.Contains(Point{X: x, Y: y}) {
		return ColorNone, false
	}
	c := b.rows[y][x]
	return c, c != ColorNone
}

// Settled yields every occupied cell with its color, row by row from the top.
func (b *Board) Settled() iter.Seq2[Point, Color] {
	return func(yield func(Point, Color) bool) {
		for y, row := range b.rows {
			for x, c := range row {
				if c == ColorNone {
					continue
				}
				if !yield(Point{X: x, Y: y}, c) {
					return
				}
			}
		}
	}
}

// CanPlace reports whether all four cells of shape at loc are inside the
// board and empty. It never mutates the board.
func (b *Board) CanPlace(shape Shape, loc Point) bool {
	return !NewShapeIter(shape, loc).Any(func(p Point) bool {
		return !b.Contains(p) || b.rows[p.Y][p.X] != ColorNone
	})
}

// IsRowFull reports whether every column of row y is occupied.
func (b *Board) IsRowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.rows[y] {
		if c == ColorNone {
			return false
		}
	}
	return true
}

func (b *Board) set(p Point, c Color) {
	if b.Contains(p) {
		b.rows[p.Y][p.X] = c
	}
}

// destroyFullRows removes every full row in one bottom-up pass and lets the
// rows above settle, keeping their order. It returns the number of rows removed.
func (b *Board) destroyFullRows() int {
	removed := 0
	for y := b.height - 1; y >= 0; y-- {
		b.rows[y], b.rows[y+removed] = b.rows[y+removed], b.rows[y]
		if b.IsRowFull(y + removed) {
			clear(b.rows[y+removed])
			removed++
		}
	}
	return removed
}
