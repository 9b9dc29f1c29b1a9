package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/shell"
	"github.com/plus3/blockfall/tetris"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := range width {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestResolveKey(t *testing.T) {
	k, ok := ResolveKey("a")
	require.True(t, ok)
	assert.Equal(t, RuneKey('a'), k)

	k, ok = ResolveKey(" ")
	require.True(t, ok)
	assert.Equal(t, RuneKey(' '), k)

	k, ok = ResolveKey("Left")
	require.True(t, ok)
	assert.Equal(t, input.Key(tcell.KeyLeft), k)

	k, ok = ResolveKey("enter")
	require.True(t, ok)
	assert.Equal(t, input.Key(tcell.KeyEnter), k)

	k, ok = ResolveKey("Esc")
	require.True(t, ok)
	assert.Equal(t, input.Key(tcell.KeyEscape), k)

	_, ok = ResolveKey("NoSuchKey")
	assert.False(t, ok)
}

func TestEventKey(t *testing.T) {
	assert.Equal(t, RuneKey('w'), EventKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.Equal(t, input.Key(tcell.KeyUp), EventKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
}

func TestDefaultBindings(t *testing.T) {
	app, err := New(newScreen(t), shell.Options{Config: config.Default()})
	require.NoError(t, err)

	action, ok := app.bindings.Lookup(RuneKey('s'))
	require.True(t, ok)
	assert.Equal(t, input.ActionDownPress, action)

	action, ok = app.bindings.Lookup(input.Key(tcell.KeyEscape))
	require.True(t, ok)
	assert.Equal(t, input.ActionBack, action)
}

func TestReleaseLatch(t *testing.T) {
	base := time.Unix(0, 0)

	t.Run("held key", func(t *testing.T) {
		l := newReleaseLatch()
		assert.False(t, l.expired(base))
		assert.True(t, l.press(base))
		assert.False(t, l.expired(base.Add(500*time.Millisecond)), "waits for the first repeat")
		assert.False(t, l.press(base.Add(550*time.Millisecond)))
		assert.False(t, l.press(base.Add(600*time.Millisecond)))
		assert.False(t, l.expired(base.Add(700*time.Millisecond)))
		assert.True(t, l.expired(base.Add(750*time.Millisecond)))
		assert.False(t, l.expired(base.Add(900*time.Millisecond)))
	})

	t.Run("single tap", func(t *testing.T) {
		l := newReleaseLatch()
		assert.True(t, l.press(base))
		assert.False(t, l.expired(base.Add(ReleaseDelay)))
		assert.False(t, l.expired(base.Add(600*time.Millisecond)))
		assert.True(t, l.expired(base.Add(FirstRepeatDelay)))
	})

	t.Run("new hold after release", func(t *testing.T) {
		l := newReleaseLatch()
		l.press(base)
		l.press(base.Add(500 * time.Millisecond))
		require.True(t, l.expired(base.Add(700*time.Millisecond)))

		assert.True(t, l.press(base.Add(800*time.Millisecond)))
		assert.False(t, l.expired(base.Add(1000*time.Millisecond)), "first-repeat grace applies again")
	})
}

func TestFrameInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, FrameInterval(60))
	assert.Equal(t, time.Second/60, FrameInterval(0))
	assert.Equal(t, 100*time.Millisecond, FrameInterval(10))
}

func TestKeySystem(t *testing.T) {
	clock := tetris.NewManualClock(time.Unix(0, 0))
	g, err := tetris.NewGame(10, 20, tetris.WithClock(clock), tetris.WithSeed(1))
	require.NoError(t, err)
	g.Start()

	events := make(chan tcell.Event, 8)
	now := time.Unix(0, 0)
	backs := 0
	keys := &keySystem{
		events:   events,
		bindings: must(New(newScreen(t), shell.Options{Config: config.Default()})).bindings,
		screen:   newScreen(t),
		back:     func() { backs++ },
		latch:    newReleaseLatch(),
		now:      func() time.Time { return now },
	}
	scheduler := frame.NewScheduler(g)
	scheduler.Register(keys)

	start := g.Falling().Location
	events <- tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)
	scheduler.Once(0)
	assert.Equal(t, start.Add(-1, 0), g.Falling().Location)
	assert.True(t, g.SoftDrop())

	now = now.Add(100 * time.Millisecond)
	scheduler.Once(0)
	assert.True(t, g.SoftDrop())

	now = now.Add(100 * time.Millisecond)
	scheduler.Once(0)
	assert.False(t, g.SoftDrop())

	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	scheduler.Once(0)
	assert.Equal(t, 1, backs)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestDrawGame(t *testing.T) {
	screen := newScreen(t)
	g, err := tetris.NewGame(10, 20, tetris.WithSeed(2))
	require.NoError(t, err)
	g.Start()

	drawGame(screen, g)

	assert.Contains(t, rowText(screen, 0, 20), "Esc: Back")
	assert.Contains(t, rowText(screen, 7, 40), "Score: 0")

	for p := range g.Falling().Iter().All() {
		x, y := cellOrigin(p)
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		assert.Equal(t, cellColors[g.Falling().Color], bg)
	}
	for p := range tetris.NewShapeIter(g.Next().Shape, shell.PreviewOrigin(g)).All() {
		x, y := cellOrigin(p)
		_, _, style, _ := screen.GetContent(x+1, y)
		_, bg, _ := style.Decompose()
		assert.Equal(t, cellColors[g.Next().Color], bg)
	}
}

func TestRunPlaysAndReturnsOnCancel(t *testing.T) {
	screen := newScreen(t)
	cfg := config.Default()
	cfg.Seed = 4
	app, err := New(screen, shell.Options{Config: cfg})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, 1, app.sessions)
}
