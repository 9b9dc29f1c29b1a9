package frame

import "github.com/plus3/blockfall/tetris"

// UpdateFrame is what every system sees during one Scheduler.Once call.
type UpdateFrame struct {
	DeltaTime float64
	Game      *tetris.Game
	Commands  *Commands
	Events    []Event
}

func newUpdateFrame(dt float64, game *tetris.Game, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Game:      game,
		Commands:  commands,
	}
}

// Publish appends an event for systems later in the frame.
func (f *UpdateFrame) Publish(e Event) {
	f.Events = append(f.Events, e)
}
