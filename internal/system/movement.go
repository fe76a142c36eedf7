package system

import (
	"errors"
	"fmt"
	"math"

	"starfield/internal/component"
	"starfield/internal/ecs"
)

// ErrMissingTimestep is returned when Movement is ticked without a usable
// elapsed time. Integrating against a stale or garbage dt would silently
// corrupt positions, so the tick fails instead.
var ErrMissingTimestep = errors.New("movement: no valid timestep")

// Movement integrates acceleration into velocity and velocity into position,
// as a semi-implicit Euler step: positions advance using each entity's
// pre-tick velocity, then velocities pick up this tick's acceleration.
type Movement struct{}

// Process runs one integration step. dt must be finite and non-negative.
func (Movement) Process(w *ecs.World, dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: dt=%v", ErrMissingTimestep, dt)
	}

	// Position first, with the velocity from before this tick.
	for _, id := range w.Query(component.CPosition, component.CVelocity) {
		pos := w.Get(id, component.CPosition).(component.Position)
		vel := w.Get(id, component.CVelocity).(component.Velocity)
		pos.X += vel.DX * dt
		pos.Y += vel.DY * dt
		w.Add(id, pos)
	}

	for _, id := range w.Query(component.CVelocity, component.CAcceleration) {
		vel := w.Get(id, component.CVelocity).(component.Velocity)
		acc := w.Get(id, component.CAcceleration).(component.Acceleration)
		vel.DX += acc.AX * dt
		vel.DY += acc.AY * dt
		w.Add(id, vel)
	}
	return nil
}
