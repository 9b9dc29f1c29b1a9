package tetris

import "math/rand/v2"

// SpawnRow is the row every new piece starts on. Offsets reach up to two
// rows above the pivot, so starting below row 0 keeps the piece visible.
const SpawnRow = 5

// Prepared is a shape and color that has not been placed yet; the game keeps
// one as the next-piece preview.
type Prepared struct {
	Shape Shape
	Color Color
}

// RandomPrepared draws a color uniformly from the palette and a shape with
// RandomShape.
func RandomPrepared(r *rand.Rand) Prepared {
	color := palette[r.IntN(len(palette))]
	return Prepared{
		Shape: RandomShape(r),
		Color: color,
	}
}

// Spawned is the piece currently falling: a shape placed at a location.
type Spawned struct {
	Shape    Shape
	Location Point
	Color    Color
}

// Iter returns the shape iterator over the piece's four board cells.
func (s Spawned) Iter() ShapeIter {
	return NewShapeIter(s.Shape, s.Location)
}

// StartPoint is where pieces spawn on a board of the given width.
func StartPoint(width int) Point {
	return Point{X: width / 2, Y: SpawnRow}
}

// Spawn places p at the start point. It does not check for collisions.
func (p Prepared) Spawn(width int) Spawned {
	return Spawned{
		Shape:    p.Shape,
		Location: StartPoint(width),
		Color:    p.Color,
	}
}
