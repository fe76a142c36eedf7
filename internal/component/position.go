package component

import "starfield/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is an entity's location in world space.
type Position struct {
	X, Y float64
}

func (Position) Type() ecs.ComponentType { return CPosition }
