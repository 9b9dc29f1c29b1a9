package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/shell"
	"github.com/plus3/blockfall/tetris"
)

const highlightWidth = 3

var (
	backgroundColor = color.RGBA{40, 40, 48, 255}
	boardColor      = color.RGBA{0, 0, 0, 255}
	highlightColor  = color.RGBA{148, 151, 192, 255}
)

var cellColors = map[tetris.Color]color.RGBA{
	tetris.ColorRed:    {255, 0, 0, 255},
	tetris.ColorGreen:  {0, 255, 0, 255},
	tetris.ColorBlue:   {0, 0, 255, 255},
	tetris.ColorYellow: {255, 255, 0, 255},
}

// CellColor returns the fill used for c.
func CellColor(c tetris.Color) color.RGBA {
	if rgba, ok := cellColors[c]; ok {
		return rgba
	}
	return boardColor
}

// ScreenSize is the logical screen: the board, seven columns for the
// preview and score, and one header row above and below.
func ScreenSize(cfg config.Config) (int, int) {
	return (cfg.Board.Width + 7) * cfg.CellSize, (cfg.Board.Height + 2) * cfg.CellSize
}

// CellOrigin returns the top-left pixel of board cell p. Row zero starts one
// cell down, below the header.
func CellOrigin(p tetris.Point, cellSize int) (float32, float32) {
	return float32(p.X * cellSize), float32((p.Y + 1) * cellSize)
}

func drawCell(screen *ebiten.Image, p tetris.Point, c tetris.Color, cellSize int) {
	x, y := CellOrigin(p, cellSize)
	size := float32(cellSize)
	vector.DrawFilledRect(screen, x, y, size, size, CellColor(c), false)
	vector.DrawFilledRect(screen, x, y, highlightWidth, size-highlightWidth, highlightColor, false)
	vector.DrawFilledRect(screen, x, y, size-highlightWidth, highlightWidth, highlightColor, false)
}

func drawGame(screen *ebiten.Image, g *tetris.Game, cellSize int) {
	board := g.Board()
	x, y := CellOrigin(tetris.Point{}, cellSize)
	vector.DrawFilledRect(screen, x, y,
		float32(board.Width()*cellSize), float32(board.Height()*cellSize), boardColor, false)

	ebitenutil.DebugPrintAt(screen, "Esc: Back", 4, 4)

	falling := g.Falling()
	falling.Iter().ForEach(func(p tetris.Point) {
		drawCell(screen, p, falling.Color, cellSize)
	})

	next := g.Next()
	tetris.NewShapeIter(next.Shape, shell.PreviewOrigin(g)).ForEach(func(p tetris.Point) {
		drawCell(screen, p, next.Color, cellSize)
	})

	for p, c := range board.Settled() {
		drawCell(screen, p, c, cellSize)
	}

	_, scoreY := CellOrigin(tetris.Point{Y: 6}, cellSize)
	ebitenutil.DebugPrintAt(screen, shell.ScoreText(g), board.Width()*cellSize+10, int(scoreY))

	if g.State() == tetris.StateLost {
		ebitenutil.DebugPrintAt(screen, shell.GameOverText, board.Width()*cellSize/2-27, int(y)+50)
	}
}

func drawMenu(screen *ebiten.Image, cellSize int) {
	x, y := float32(100), float32(100)
	w, h := float32(200), float32(cellSize)
	vector.DrawFilledRect(screen, x, y, w, h, highlightColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, boardColor, false)
	ebitenutil.DebugPrintAt(screen, "Start!", int(x)+82, int(y+h/2)-8)
	ebitenutil.DebugPrintAt(screen, "Enter: Start   Esc: Quit", int(x)+16, int(y+h)+12)
}
