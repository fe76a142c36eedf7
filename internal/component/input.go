package component

import (
	"starfield/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CInputState ecs.ComponentType = 5

// InputState buffers the key events that arrived since the previous frame.
// The frontend clears and repopulates both sets once per tick, before systems
// run; systems only read them.
type InputState struct {
	Pressed  map[tcell.Key]bool
	Released map[tcell.Key]bool
}

func (InputState) Type() ecs.ComponentType { return CInputState }

// NewInputState returns an InputState with empty buffers.
func NewInputState() InputState {
	return InputState{
		Pressed:  make(map[tcell.Key]bool),
		Released: make(map[tcell.Key]bool),
	}
}
