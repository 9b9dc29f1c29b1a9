package tetris

import "math/rand/v2"

// Shape is a piece kind plus its four cell offsets. Shapes are values:
// assigning one copies its offsets, so transforming a copy never touches
// the original or the catalog.
type Shape struct {
	Kind    Kind
	Offsets [4]Offset
}

// Rotate turns every offset a quarter turn. The O piece is symmetric under
// rotation and is left untouched.
func (s *Shape) Rotate() {
	if s.Kind == KindO {
		return
	}
	for i := range s.Offsets {
		s.Offsets[i].Rotate()
	}
}

// Mirror flips every offset horizontally.
func (s *Shape) Mirror() {
	for i := range s.Offsets {
		s.Offsets[i].Mirror()
	}
}

// Rotated returns a rotated copy of s.
func (s Shape) Rotated() Shape {
	s.Rotate()
	return s
}

// RandomShape picks a catalog entry uniformly, mirrors it with probability
// one half and then rotates it zero to three times, each count equally likely.
func RandomShape(r *rand.Rand) Shape {
	base := catalog()
	shape := base[r.IntN(len(base))]

	if r.IntN(2) == 1 {
		shape.Mirror()
	}
	for range r.IntN(4) {
		shape.Rotate()
	}
	return shape
}
