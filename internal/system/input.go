package system

import (
	"starfield/internal/component"
	"starfield/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// InputAccel is the acceleration delta one directional key press applies,
// in world units per second².
const InputAccel = 50.0

// Input turns buffered directional key presses into acceleration deltas on
// the controlled entity. It only reads the buffers; the frontend clears and
// refills them once per frame before systems run. Simultaneous presses
// compose additively, so two diagonal keys accelerate on both axes.
type Input struct{}

// Process applies one delta per directional key present in the pressed set.
func (Input) Process(w *ecs.World, _ float64) error {
	for _, id := range w.Query(component.CInputState, component.CPlayer, component.CAcceleration) {
		in := w.Get(id, component.CInputState).(component.InputState)
		acc := w.Get(id, component.CAcceleration).(component.Acceleration)

		if in.Pressed[tcell.KeyLeft] {
			acc.AX -= InputAccel
		}
		if in.Pressed[tcell.KeyRight] {
			acc.AX += InputAccel
		}
		if in.Pressed[tcell.KeyUp] {
			acc.AY -= InputAccel
		}
		if in.Pressed[tcell.KeyDown] {
			acc.AY += InputAccel
		}
		w.Add(id, acc)
	}
	return nil
}
