package factory

import (
	"starfield/internal/component"
	"starfield/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// PlayerSize is the edge length of the player's sprite in world units.
const PlayerSize = 20

// NewPlayer creates the controlled entity at (x, y) with empty motion state
// and input buffers.
func NewPlayer(w *ecs.World, x, y float64, name string) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Velocity{})
	w.Add(id, component.Acceleration{})
	w.Add(id, component.NewSprite(component.Visual{
		Glyph: "🚀",
		Color: tcell.ColorYellow,
		Size:  PlayerSize,
	}))
	w.Add(id, component.Player{Name: name})
	w.Add(id, component.NewInputState())
	return id
}

// NewBlock creates a static decorative square at (x, y). Terrain blocks and
// scattered decorations both go through here; they differ only in color,
// size, and who remembers them.
func NewBlock(w *ecs.World, x, y float64, color tcell.Color, size float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.NewSprite(component.Visual{
		Glyph: "█",
		Color: color,
		Size:  size,
	}))
	return id
}
