package ecs

import "errors"

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is the zero value — no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

// ErrNotFound is returned when an operation names an entity that is not
// alive. Callers that track their own spawned entities treat it as benign.
var ErrNotFound = errors.New("entity not found")
