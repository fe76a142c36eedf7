package component

import (
	"starfield/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CSprite ecs.ComponentType = 4

// Visual is the stable handle the render collaborator draws from: a glyph, a
// color, and an edge length in world units (sprites are solid squares).
type Visual struct {
	Glyph string
	Color tcell.Color
	Size  float64
}

// Rect is an axis-aligned box in world units.
type Rect struct {
	X, Y, W, H float64
}

// Sprite is the renderable footprint of an entity. Bounds' dimensions are
// derived from the Visual at construction and never change afterwards; only
// its position is refreshed each frame by the render pass. Layer is reserved
// for draw ordering and not consulted by the renderer.
type Sprite struct {
	Visual Visual
	Bounds Rect
	Layer  int
}

func (Sprite) Type() ecs.ComponentType { return CSprite }

// NewSprite builds a Sprite whose Bounds match the visual's size.
func NewSprite(v Visual) Sprite {
	return Sprite{
		Visual: v,
		Bounds: Rect{W: v.Size, H: v.Size},
	}
}
