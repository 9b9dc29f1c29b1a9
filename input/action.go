// Package input defines the requests a front end can make of a game and the
// key table that maps raw key codes onto them.
package input

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// Action is a player request. The first five map one-to-one onto the game's
// Receive methods; Start and Back are page-level and handled by the shell.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRotate
	ActionDownPress
	ActionDownRelease
	ActionStart
	ActionBack
)

var actionNames = [...]string{
	ActionNone:        "none",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionRotate:      "rotate",
	ActionDownPress:   "drop",
	ActionDownRelease: "drop_release",
	ActionStart:       "start",
	ActionBack:        "back",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name && Action(i) != ActionNone {
			return Action(i), nil
		}
	}
	return ActionNone, fmt.Errorf("input: unknown action %q", name)
}

// Release returns the action a key-up produces for a key bound to a. Only
// the soft-drop key has one.
func (a Action) Release() (Action, bool) {
	if a == ActionDownPress {
		return ActionDownRelease, true
	}
	return ActionNone, false
}

// Apply forwards a game-level action to g. Page-level actions are ignored.
func (a Action) Apply(g *tetris.Game) {
	switch a {
	case ActionLeft:
		g.ReceiveLeft()
	case ActionRight:
		g.ReceiveRight()
	case ActionRotate:
		g.ReceiveRotate()
	case ActionDownPress:
		g.ReceiveDownPress()
	case ActionDownRelease:
		g.ReceiveDownRelease()
	}
}
