// Package tui is the terminal front end. It has the same menu and game pages
// as the GUI, drawn with tcell, two columns per board cell.
package tui

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/shell"
)

// Terminals report presses only, so a held soft-drop key is seen as a
// stream of auto-repeats and its release is inferred from the stream going
// quiet. FirstRepeatDelay covers the pause before the first repeat, which
// terminals keep at 250 to 600 ms; ReleaseDelay applies once repeats arrive.
const (
	FirstRepeatDelay = 650 * time.Millisecond
	ReleaseDelay     = 150 * time.Millisecond
)

// App drives one tcell screen.
type App struct {
	screen   tcell.Screen
	opts     shell.Options
	bindings *input.Bindings
	events   chan tcell.Event
	sessions int
}

// New builds the app over an initialized screen. The caller owns the screen
// and finalizes it after Run returns.
func New(screen tcell.Screen, opts shell.Options) (*App, error) {
	bindings, err := input.FromNames(opts.Config.Keys.TUI, ResolveKey)
	if err != nil {
		return nil, err
	}
	return &App{
		screen:   screen,
		opts:     opts,
		bindings: bindings,
		events:   make(chan tcell.Event, 100),
	}, nil
}

// Run shows the menu until the back key, Ctrl-C or ctx ends it.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.poll(ctx)

	drawMenu(a.screen)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-a.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				action, ok := a.bindings.Lookup(EventKey(ev))
				if !ok {
					continue
				}
				switch action {
				case input.ActionStart:
					if err := a.play(ctx); err != nil {
						return err
					}
				case input.ActionBack:
					return nil
				}
			}
			drawMenu(a.screen)
		}
	}
}

func (a *App) poll(ctx context.Context) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// play runs one game page until the back key.
func (a *App) play(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.sessions++
	keys := &keySystem{
		events:   a.events,
		bindings: a.bindings,
		screen:   a.screen,
		back:     cancel,
		latch:    newReleaseLatch(),
		now:      time.Now,
	}
	s, err := shell.NewSession(a.opts, a.sessions, keys, &renderSystem{screen: a.screen})
	if err != nil {
		return err
	}
	log.Printf("page: menu -> game")

	s.Scheduler.Run(ctx, FrameInterval(a.opts.Config.FrameRate))

	log.Printf("page: game -> menu")
	return s.Close()
}

// FrameInterval converts a frame rate in Hz to a ticker interval.
func FrameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// keySystem drains pending terminal events into the frame's commands.
type keySystem struct {
	events   <-chan tcell.Event
	bindings *input.Bindings
	screen   tcell.Screen
	back     func()
	latch    releaseLatch
	now      func() time.Time
}

func (k *keySystem) Execute(f *frame.UpdateFrame) {
	now := k.now()
	for drained := false; !drained; {
		select {
		case ev := <-k.events:
			k.handle(f, ev, now)
		default:
			drained = true
		}
	}
	if k.latch.expired(now) {
		f.Commands.Push(input.ActionDownRelease)
	}
}

func (k *keySystem) handle(f *frame.UpdateFrame, ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		k.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			k.back()
			return
		}
		action, ok := k.bindings.Lookup(EventKey(ev))
		if !ok {
			return
		}
		switch action {
		case input.ActionBack:
			k.back()
		case input.ActionStart:
		case input.ActionDownPress:
			if k.latch.press(now) {
				f.Commands.Push(action)
			}
		default:
			f.Commands.Push(action)
		}
	}
}

// releaseLatch turns a stream of auto-repeated presses into one press and
// one release.
type releaseLatch struct {
	first     time.Duration
	after     time.Duration
	held      bool
	repeating bool
	last      time.Time
}

func newReleaseLatch() releaseLatch {
	return releaseLatch{first: FirstRepeatDelay, after: ReleaseDelay}
}

// press records a press and reports whether it starts a new hold.
func (l *releaseLatch) press(now time.Time) bool {
	first := !l.held
	l.repeating = l.held
	l.held = true
	l.last = now
	return first
}

// expired reports, once, that the hold has gone quiet: longer than first
// before any repeat, longer than after once repeats have arrived.
func (l *releaseLatch) expired(now time.Time) bool {
	if !l.held {
		return false
	}
	wait := l.first
	if l.repeating {
		wait = l.after
	}
	if now.Sub(l.last) < wait {
		return false
	}
	l.held = false
	l.repeating = false
	return true
}
