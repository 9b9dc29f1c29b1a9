// Package tetris is the rule engine of a falling-block puzzle game: piece
// geometry, collision against the settled board, gravity timing, line
// clearing and the READY/RUNNING/LOST state machine.
//
// A Game is driven synchronously by its caller. Nothing in this package
// blocks, spawns goroutines or performs I/O.
package tetris

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

// State is the game's position in its one-way lifecycle.
type State uint8

const (
	StateReady State = iota
	StateRunning
	StateLost
)

var stateNames = [...]string{"READY", "RUNNING", "LOST"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "UNKNOWN"
}

const (
	// GravityInterval is how long a piece waits before falling one row.
	GravityInterval = 1000 * time.Millisecond
	// SoftDropInterval replaces GravityInterval while soft drop is held.
	SoftDropInterval = 100 * time.Millisecond
)

// ErrInvalidSize is returned by NewGame for non-positive board dimensions.
var ErrInvalidSize = errors.New("tetris: board dimensions must be positive")

// Option configures a Game at construction.
type Option func(*Game)

// WithClock sets the clock gravity is timed against. Defaults to SystemClock.
func WithClock(clock Clock) Option {
	return func(g *Game) {
		g.clock = clock
	}
}

// WithRand sets the random source for pieces and colors.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithSeed seeds a private PCG source, making the piece sequence reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// Game is the aggregate for one session: the board, the falling piece, the
// next-piece preview, score, state and gravity timing.
type Game struct {
	board   *Board
	next    Prepared
	falling Spawned
	state   State
	score   int

	pieces int
	steps  int

	startedAt time.Time
	lastStep  time.Time
	lastTick  time.Time
	softDrop  bool

	clock Clock
	rng   *rand.Rand
}

// NewGame builds a game in the READY state with a falling piece already
// spawned and a next piece prepared.
func NewGame(width, height int, opts ...Option) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	g := &Game{
		board: newBoard(width, height),
		state: StateReady,
		clock: SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g.next = RandomPrepared(g.rng)
	g.falling = RandomPrepared(g.rng).Spawn(width)
	g.lastStep = g.clock.Now()
	return g, nil
}

// Start moves a READY game to RUNNING and starts the gravity timer. It has
// no effect in any other state.
func (g *Game) Start() {
	if g.state != StateReady {
		return
	}
	g.state = StateRunning
	g.startedAt = g.clock.Now()
	g.lastStep = g.startedAt
	g.lastTick = g.startedAt
}

// ReceiveTick performs one gravity step when more than the current interval
// has passed since the last one. Overshoot is discarded: the timer restarts
// at the current reading.
func (g *Game) ReceiveTick() {
	if g.state != StateRunning {
		return
	}

	now := g.clock.Now()
	g.lastTick = now
	elapsed := now.Sub(g.lastStep)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > g.GravityDelay() {
		g.step()
		g.lastStep = now
	}
}

// ReceiveLeft moves the falling piece one column left if it fits.
func (g *Game) ReceiveLeft() {
	g.shift(-1)
}

// ReceiveRight moves the falling piece one column right if it fits.
func (g *Game) ReceiveRight() {
	g.shift(1)
}

// ReceiveRotate rotates the falling piece in place if the rotated shape fits
// at the current location. There is no wall kick.
func (g *Game) ReceiveRotate() {
	if g.state != StateRunning {
		return
	}

	rotated := g.falling.Shape.Rotated()
	if !g.board.CanPlace(rotated, g.falling.Location) {
		return
	}
	g.falling.Shape = rotated
}

// ReceiveDownPress turns on soft drop while the game is running.
func (g *Game) ReceiveDownPress() {
	if g.state != StateRunning {
		return
	}
	g.softDrop = true
}

// ReceiveDownRelease turns soft drop off. Unlike every other input it applies
// in any state, so a release that arrives after the game is lost still
// clears the flag.
func (g *Game) ReceiveDownRelease() {
	g.softDrop = false
}

func (g *Game) shift(dx int) {
	if g.state != StateRunning {
		return
	}

	target := g.falling.Location.Add(dx, 0)
	if !g.board.CanPlace(g.falling.Shape, target) {
		return
	}
	g.falling.Location = target
}

func (g *Game) step() {
	if g.state != StateRunning {
		return
	}
	g.steps++

	below := g.falling.Location.Add(0, 1)
	if g.board.CanPlace(g.falling.Shape, below) {
		g.falling.Location = below
		return
	}

	g.ground()
}

func (g *Game) ground() {
	color := g.falling.Color
	g.falling.Iter().ForEachOn(g.board, func(b *Board, p Point) {
		b.set(p, color)
	})

	g.score += g.board.destroyFullRows()
	g.pieces++
	g.spawnNext()
}

// spawnNext promotes the preview to the falling slot and prepares a fresh
// preview. A promoted piece that does not fit ends the game.
func (g *Game) spawnNext() {
	fresh := RandomPrepared(g.rng)
	g.falling = g.next.Spawn(g.board.width)
	g.next = fresh

	if !g.board.CanPlace(g.falling.Shape, g.falling.Location) {
		g.state = StateLost
	}
}

// GravityDelay returns the interval that currently applies.
func (g *Game) GravityDelay() time.Duration {
	if g.softDrop {
		return SoftDropInterval
	}
	return GravityInterval
}

// Board returns the settled cells. Its exported methods are read-only.
func (g *Game) Board() *Board { return g.board }

// Falling returns a copy of the falling piece.
func (g *Game) Falling() Spawned { return g.falling }

// Next returns a copy of the next-piece preview.
func (g *Game) Next() Prepared { return g.next }

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Score returns the number of rows cleared so far.
func (g *Game) Score() int { return g.score }

// Pieces returns the number of pieces grounded so far.
func (g *Game) Pieces() int { return g.pieces }

// Steps returns the number of gravity steps taken so far.
func (g *Game) Steps() int { return g.steps }

// SoftDrop reports whether soft drop is held.
func (g *Game) SoftDrop() bool { return g.softDrop }

// LastTick returns the clock reading the latest ReceiveTick judged gravity
// against, or the start reading before the first tick.
func (g *Game) LastTick() time.Time { return g.lastTick }

// StartedAt returns the clock reading taken by Start, or the zero time
// before the game has started.
func (g *Game) StartedAt() time.Time { return g.startedAt }
