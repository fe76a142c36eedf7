package system

import (
	"starfield/internal/component"
	"starfield/internal/ecs"
	"starfield/internal/generate"
)

// Generation drives the world generator from the player's position: the
// first tick initializes the world around the player, later ticks stream
// terrain as the player moves. When several player-tagged entities exist,
// each one drives the same shared generator in turn — a known limitation
// carried over from the single-observer design.
type Generation struct {
	gen *generate.WorldGenerator
}

// NewGeneration wraps gen as a schedulable system.
func NewGeneration(gen *generate.WorldGenerator) *Generation {
	return &Generation{gen: gen}
}

// Process looks up every (Position, Player) entity and feeds its position to
// the generator.
func (s *Generation) Process(w *ecs.World, _ float64) error {
	for _, id := range w.Query(component.CPosition, component.CPlayer) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !s.gen.Initialized() {
			s.gen.InitializeWorld(pos.X, pos.Y)
		} else {
			s.gen.Update(pos.X, pos.Y)
		}
	}
	return nil
}
