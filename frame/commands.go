package frame

import (
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// Commands buffers work that is applied to the game at the end of a frame,
// after every system has run: player actions first, then deferred functions,
// each in the order they were queued.
type Commands struct {
	actions []input.Action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a player action.
func (c *Commands) Push(a input.Action) {
	c.actions = append(c.actions, a)
}

// Defer queues a function execution.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Actions returns the queued actions. The slice is only valid until Flush.
func (c *Commands) Actions() []input.Action {
	return c.actions
}

// Flush applies everything queued to g and resets the buffer.
func (c *Commands) Flush(g *tetris.Game) {
	for _, a := range c.actions {
		a.Apply(g)
	}
	for _, fn := range c.defers {
		fn()
	}

	c.actions = c.actions[:0]
	c.defers = c.defers[:0]
}
