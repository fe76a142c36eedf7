package component

import "starfield/internal/ecs"

const (
	CVelocity     ecs.ComponentType = 2
	CAcceleration ecs.ComponentType = 3
)

// Velocity is an entity's speed in world units per second.
type Velocity struct {
	DX, DY float64
}

func (Velocity) Type() ecs.ComponentType { return CVelocity }

// Acceleration is an entity's change in velocity in world units per second².
type Acceleration struct {
	AX, AY float64
}

func (Acceleration) Type() ecs.ComponentType { return CAcceleration }
