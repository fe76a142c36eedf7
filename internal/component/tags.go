package component

import "starfield/internal/ecs"

const CPlayer ecs.ComponentType = 6

// Player marks the user-controlled entity. At most one is expected; the
// world does not enforce it.
type Player struct {
	Name string
}

func (Player) Type() ecs.ComponentType { return CPlayer }
