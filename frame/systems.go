package frame

import "github.com/plus3/blockfall/tetris"

// EventKind classifies something that happened to the game during a frame.
type EventKind uint8

const (
	EventGrounded EventKind = iota + 1
	EventLinesCleared
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventGrounded:
		return "grounded"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLost:
		return "lost"
	}
	return "unknown"
}

// Event is published by WatchSystem.
type Event struct {
	Kind  EventKind
	Lines int
	Score int
}

// GravitySystem forwards every frame to the game's tick handler.
type GravitySystem struct{}

func (GravitySystem) Execute(frame *UpdateFrame) {
	frame.Game.ReceiveTick()
}

// WatchSystem compares the game against what it saw last frame and
// publishes an event for each change. The zero value matches a fresh game.
type WatchSystem struct {
	state  tetris.State
	score  int
	pieces int
}

func (w *WatchSystem) Execute(frame *UpdateFrame) {
	g := frame.Game

	if g.Pieces() > w.pieces {
		frame.Publish(Event{Kind: EventGrounded, Score: g.Score()})
	}
	if g.Score() > w.score {
		frame.Publish(Event{Kind: EventLinesCleared, Lines: g.Score() - w.score, Score: g.Score()})
	}
	if g.State() == tetris.StateLost && w.state != tetris.StateLost {
		frame.Publish(Event{Kind: EventLost, Score: g.Score()})
	}

	w.state = g.State()
	w.score = g.Score()
	w.pieces = g.Pieces()
}
