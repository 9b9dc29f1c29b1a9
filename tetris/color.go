package tetris

// Color is the settled color of a board cell. The zero value marks an
// empty cell.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
)

var palette = [4]Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}

var colorNames = [...]string{"none", "red", "green", "blue", "yellow"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "?"
}

// Palette returns the colors a spawned piece can take.
func Palette() [4]Color {
	return palette
}
