package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game and renders the inspector over a running game.
type Game struct {
	scheduler    *frame.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	// The inspector window is drawn while the frame's commands flush
	g.scheduler.Once(1.0 / 60.0)

	g.imguiBackend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("Inspector Example", 1280, 720)

	game, err := tetris.NewGame(10, 20)
	if err != nil {
		panic(err)
	}
	game.Start()

	scheduler := frame.NewScheduler(game)
	scheduler.Register(&frame.GravitySystem{})
	scheduler.Register(debugui.NewInspectorSystem(scheduler, 120))

	if err := ebiten.RunGame(&Game{scheduler: scheduler, imguiBackend: imguiBackend}); err != nil {
		panic(err)
	}
}
