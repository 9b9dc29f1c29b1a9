package tetris

import "iter"

// ShapeIter visits the four absolute cells of a shape placed at a location.
// It is a fixed four-step traversal and never allocates.
type ShapeIter struct {
	shape Shape
	loc   Point
}

// NewShapeIter returns an iterator over shape's cells with its pivot at loc.
func NewShapeIter(shape Shape, loc Point) ShapeIter {
	return ShapeIter{shape: shape, loc: loc}
}

// Points returns the four absolute cells in offset order.
func (it ShapeIter) Points() [4]Point {
	var out [4]Point
	for i, o := range it.shape.Offsets {
		out[i] = o.Apply(it.loc)
	}
	return out
}

// Any reports whether pred holds for at least one cell, stopping at the
// first match.
func (it ShapeIter) Any(pred func(Point) bool) bool {
	for _, o := range it.shape.Offsets {
		if pred(o.Apply(it.loc)) {
			return true
		}
	}
	return false
}

// ForEach calls fn for every cell.
func (it ShapeIter) ForEach(fn func(Point)) {
	it.Any(func(p Point) bool {
		fn(p)
		return false
	})
}

// ForEachOn calls fn for every cell with an explicit handle to the board
// being written.
func (it ShapeIter) ForEachOn(b *Board, fn func(b *Board, p Point)) {
	for _, o := range it.shape.Offsets {
		fn(b, o.Apply(it.loc))
	}
}

// All returns the cells as a range-over-func sequence.
func (it ShapeIter) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, o := range it.shape.Offsets {
			if !yield(o.Apply(it.loc)) {
				return
			}
		}
	}
}
