// Package gui is the Ebiten front end: a menu page and a game page that
// draws the board and forwards key presses and releases to the game.
package gui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/shell"
)

const WindowTitle = "Blockfall"

type Page uint8

const (
	PageMenu Page = iota
	PageGame
)

func (p Page) String() string {
	if p == PageGame {
		return "game"
	}
	return "menu"
}

// App implements ebiten.Game.
type App struct {
	opts     shell.Options
	bindings *input.Bindings
	backend  *debugui_ebiten.ImguiBackend

	page      Page
	session   *shell.Session
	inspector *debugui.InspectorSystem
	sessions  int
	keys      []ebiten.Key
}

// New builds the app. A non-nil backend enables the inspector window.
func New(opts shell.Options, backend *debugui_ebiten.ImguiBackend) (*App, error) {
	bindings, err := input.FromNames(opts.Config.Keys.GUI, ResolveKey)
	if err != nil {
		return nil, err
	}
	return &App{opts: opts, bindings: bindings, backend: backend}, nil
}

// Run opens the window and blocks until it is closed or Escape is pressed on
// the menu.
func (a *App) Run() error {
	w, h := ScreenSize(a.opts.Config)
	if a.backend == nil {
		ebiten.SetWindowSize(w, h)
	}
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(a.opts.Config.FrameRate)

	err := ebiten.RunGame(a)
	if a.session != nil {
		if cerr := a.session.Close(); cerr != nil {
			log.Printf("close session: %v", cerr)
		}
		a.session = nil
	}
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (a *App) Page() Page {
	return a.page
}

func (a *App) Update() error {
	if a.backend != nil {
		a.backend.BeginFrame()
		defer a.backend.EndFrame()
	}

	switch a.page {
	case PageMenu:
		return a.updateMenu()
	case PageGame:
		return a.updateGame()
	}
	return nil
}

func (a *App) updateMenu() error {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		action, ok := a.bindings.Lookup(input.Key(k))
		if !ok {
			continue
		}
		switch action {
		case input.ActionStart:
			return a.openGame()
		case input.ActionBack:
			return ebiten.Termination
		}
	}
	return nil
}

func (a *App) openGame() error {
	a.sessions++
	var extras []frame.System
	if a.backend != nil {
		a.inspector = debugui.NewInspectorSystem(nil, 120)
		extras = append(extras, a.inspector)
	}

	s, err := shell.NewSession(a.opts, a.sessions, extras...)
	if err != nil {
		return err
	}
	if a.inspector != nil {
		a.inspector.Scheduler = s.Scheduler
	}
	a.session = s
	a.setPage(PageGame)
	return nil
}

func (a *App) closeGame() error {
	err := a.session.Close()
	a.session = nil
	a.inspector = nil
	a.setPage(PageMenu)
	return err
}

func (a *App) setPage(p Page) {
	log.Printf("page: %s -> %s", a.page, p)
	a.page = p
}

func (a *App) updateGame() error {
	captured := a.inspector != nil && a.inspector.Input.WantCaptureKeyboard

	if !captured {
		a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
		for _, k := range a.keys {
			action, ok := a.bindings.Lookup(input.Key(k))
			if !ok {
				continue
			}
			switch action {
			case input.ActionBack:
				return a.closeGame()
			case input.ActionStart:
			default:
				a.session.Scheduler.Push(action)
			}
		}
	}

	// Releases are forwarded even while ImGui has focus so soft drop
	// cannot stick.
	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		action, ok := a.bindings.Lookup(input.Key(k))
		if !ok {
			continue
		}
		if release, ok := action.Release(); ok {
			a.session.Scheduler.Push(release)
		}
	}

	for _, e := range a.session.Scheduler.Once(1.0 / float64(ebiten.TPS())) {
		if e.Kind == frame.EventLost {
			log.Printf("game over: score %d", e.Score)
		}
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch a.page {
	case PageMenu:
		drawMenu(screen, a.opts.Config.CellSize)
	case PageGame:
		drawGame(screen, a.session.Game, a.opts.Config.CellSize)
	}

	if a.backend != nil {
		a.backend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
	}
	return ScreenSize(a.opts.Config)
}
