package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/shell"
	"github.com/plus3/blockfall/tetris"
)

var (
	boardStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	hintStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

var cellColors = map[tetris.Color]tcell.Color{
	tetris.ColorRed:    tcell.ColorRed,
	tetris.ColorGreen:  tcell.ColorGreen,
	tetris.ColorBlue:   tcell.ColorBlue,
	tetris.ColorYellow: tcell.ColorYellow,
}

// renderSystem redraws the screen after the frame's actions are applied.
type renderSystem struct {
	screen tcell.Screen
}

func (r *renderSystem) Execute(f *frame.UpdateFrame) {
	g := f.Game
	f.Commands.Defer(func() {
		drawGame(r.screen, g)
	})
}

// cellOrigin is the screen column and row of board cell p, below the header.
func cellOrigin(p tetris.Point) (int, int) {
	return p.X * 2, p.Y + 1
}

func drawCell(screen tcell.Screen, p tetris.Point, style tcell.Style) {
	x, y := cellOrigin(p)
	screen.SetContent(x, y, ' ', nil, style)
	screen.SetContent(x+1, y, ' ', nil, style)
}

func colorStyle(c tetris.Color) tcell.Style {
	if tc, ok := cellColors[c]; ok {
		return tcell.StyleDefault.Background(tc)
	}
	return boardStyle
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawGame(screen tcell.Screen, g *tetris.Game) {
	screen.Clear()
	board := g.Board()

	drawText(screen, 0, 0, "Esc: Back", hintStyle)
	for y := range board.Height() {
		for x := range board.Width() {
			drawCell(screen, tetris.Point{X: x, Y: y}, boardStyle)
		}
	}

	falling := g.Falling()
	style := colorStyle(falling.Color)
	for p := range falling.Iter().All() {
		drawCell(screen, p, style)
	}

	next := g.Next()
	style = colorStyle(next.Color)
	for p := range tetris.NewShapeIter(next.Shape, shell.PreviewOrigin(g)).All() {
		drawCell(screen, p, style)
	}

	for p, c := range board.Settled() {
		drawCell(screen, p, colorStyle(c))
	}

	_, scoreY := cellOrigin(tetris.Point{Y: 6})
	drawText(screen, board.Width()*2+2, scoreY, shell.ScoreText(g), textStyle)

	if g.State() == tetris.StateLost {
		x := max(board.Width()-len(shell.GameOverText)/2, 0)
		drawText(screen, x, 3, shell.GameOverText, textStyle)
	}
	screen.Show()
}

func drawMenu(screen tcell.Screen) {
	screen.Clear()
	drawText(screen, 4, 2, "[ Start! ]", textStyle)
	drawText(screen, 4, 4, "Enter: Start   Esc: Quit", hintStyle)
	screen.Show()
}
