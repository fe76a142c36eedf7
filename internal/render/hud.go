package render

import (
	"fmt"

	"starfield/internal/component"
	"starfield/internal/ecs"
	"starfield/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// DrawHUD renders the status line and key help at the bottom of the screen.
func (r *Renderer) DrawHUD(w *ecs.World, gen *generate.WorldGenerator, fps float64) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	status := fmt.Sprintf("chunks:%d  entities:%d  seed:%d  fps:%.0f",
		gen.Terrain().ChunkCount(), w.Count(), gen.Seed(), fps)

	if players := w.Query(component.CPlayer, component.CPosition); len(players) > 0 {
		id := players[0]
		pos := w.Get(id, component.CPosition).(component.Position)
		status = fmt.Sprintf("pos:(%.0f,%.0f)  ", pos.X, pos.Y) + status
		if c := w.Get(id, component.CVelocity); c != nil {
			vel := c.(component.Velocity)
			status += fmt.Sprintf("  vel:(%.0f,%.0f)", vel.DX, vel.DY)
		}
	}

	r.drawText(0, hudY, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+1, "arrows/hjkl: thrust  r: re-scatter  c: clear  q: quit",
		tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
