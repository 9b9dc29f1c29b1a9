package tetris

// Point is an absolute grid coordinate. A point is valid when 0 <= X < width
// and 0 <= Y < height; anything else only appears as a rejected candidate
// during collision checks and is never stored in a board.
type Point struct {
	X, Y int
}

// Add returns the point shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Offset is a cell position relative to a shape's pivot at (0, 0).
type Offset struct {
	DX, DY int
}

// Rotate turns the offset a quarter turn in place: (dx, dy) -> (dy, -dx).
func (o *Offset) Rotate() {
	o.DX, o.DY = o.DY, -o.DX
}

// Mirror flips the offset across the vertical axis in place.
func (o *Offset) Mirror() {
	o.DX = -o.DX
}

// Apply returns the absolute point this offset names when the pivot sits at p.
func (o Offset) Apply(p Point) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}
