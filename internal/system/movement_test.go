package system

import (
	"errors"
	"math"
	"testing"

	"starfield/internal/component"
	"starfield/internal/ecs"
)

func setupMover(pos component.Position, vel component.Velocity, acc component.Acceleration) (*ecs.World, ecs.EntityID) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, pos)
	w.Add(id, vel)
	w.Add(id, acc)
	return w, id
}

func TestMovementIntegratesSemiImplicitEuler(t *testing.T) {
	w, id := setupMover(
		component.Position{X: 10, Y: 20},
		component.Velocity{DX: 4, DY: -2},
		component.Acceleration{AX: 100, AY: 100},
	)

	if err := (Movement{}).Process(w, 0.5); err != nil {
		t.Fatalf("process: %v", err)
	}

	// Position must use the pre-tick velocity: 10+4*0.5, not 10+(4+50)*0.5.
	pos := w.Get(id, component.CPosition).(component.Position)
	if pos.X != 12 || pos.Y != 19 {
		t.Fatalf("position (%v,%v), want (12,19)", pos.X, pos.Y)
	}

	vel := w.Get(id, component.CVelocity).(component.Velocity)
	if vel.DX != 54 || vel.DY != 48 {
		t.Fatalf("velocity (%v,%v), want (54,48)", vel.DX, vel.DY)
	}
}

func TestMovementWithoutAcceleration(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Position{X: 0, Y: 0})
	w.Add(id, component.Velocity{DX: 10, DY: 0})

	if err := (Movement{}).Process(w, 1); err != nil {
		t.Fatalf("process: %v", err)
	}
	pos := w.Get(id, component.CPosition).(component.Position)
	if pos.X != 10 {
		t.Fatalf("position X=%v, want 10", pos.X)
	}
	vel := w.Get(id, component.CVelocity).(component.Velocity)
	if vel.DX != 10 {
		t.Fatalf("velocity must be unchanged without acceleration, got %v", vel.DX)
	}
}

func TestMovementZeroDtIsValid(t *testing.T) {
	w, id := setupMover(
		component.Position{X: 1, Y: 1},
		component.Velocity{DX: 5, DY: 5},
		component.Acceleration{AX: 5, AY: 5},
	)
	if err := (Movement{}).Process(w, 0); err != nil {
		t.Fatalf("dt=0 should integrate to a no-op, got %v", err)
	}
	pos := w.Get(id, component.CPosition).(component.Position)
	if pos.X != 1 || pos.Y != 1 {
		t.Fatalf("position moved with dt=0: (%v,%v)", pos.X, pos.Y)
	}
}

func TestMovementRejectsInvalidDt(t *testing.T) {
	for _, dt := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.016} {
		w, id := setupMover(
			component.Position{X: 1, Y: 1},
			component.Velocity{DX: 5, DY: 5},
			component.Acceleration{},
		)
		err := (Movement{}).Process(w, dt)
		if !errors.Is(err, ErrMissingTimestep) {
			t.Fatalf("dt=%v: expected ErrMissingTimestep, got %v", dt, err)
		}
		// The failed tick must not have integrated anything.
		pos := w.Get(id, component.CPosition).(component.Position)
		if pos.X != 1 || pos.Y != 1 {
			t.Fatalf("dt=%v: position moved on a failed tick", dt)
		}
	}
}
