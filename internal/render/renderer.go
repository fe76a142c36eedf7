package render

import (
	"errors"

	"starfield/internal/component"
	"starfield/internal/ecs"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrNoCamera is returned when no (Player, Position) entity exists to anchor
// the camera. The frame cannot be drawn without a reference point.
var ErrNoCamera = errors.New("render: no player entity to anchor the camera")

// hudRows is how many bottom rows the HUD occupies.
const hudRows = 2

// Renderer draws every (Sprite, Position) entity onto a tcell screen,
// camera-relative to the player. Layer is carried on sprites but not yet
// consulted; entities draw in query order.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer sized to the screen, reserving the bottom
// rows for the HUD.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, h-hudRows),
	}
}

// Camera exposes the camera for viewport math.
func (r *Renderer) Camera() *Camera { return r.camera }

// Resize re-reads the screen dimensions after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - hudRows
}

// DrawFrame clears the screen and draws every renderable entity relative to
// the player's position. Each sprite's bounding rect is refreshed to its
// entity's world position; the rect's dimensions never change here.
func (r *Renderer) DrawFrame(w *ecs.World) error {
	players := w.Query(component.CPlayer, component.CPosition)
	if len(players) == 0 {
		return ErrNoCamera
	}
	anchor := w.Get(players[0], component.CPosition).(component.Position)
	r.camera.Center(anchor.X, anchor.Y)

	r.screen.Clear()
	for _, id := range w.Query(component.CSprite, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		sp := w.Get(id, component.CSprite).(component.Sprite)

		sp.Bounds.X = pos.X
		sp.Bounds.Y = pos.Y
		w.Add(id, sp)

		r.drawSprite(pos, sp)
	}
	return nil
}

// drawSprite paints one sprite's footprint in cells.
func (r *Renderer) drawSprite(pos component.Position, sp component.Sprite) {
	sx, sy, visible := r.camera.WorldToScreen(pos.X, pos.Y)
	if !visible {
		return
	}
	style := tcell.StyleDefault.Foreground(sp.Visual.Color).Background(tcell.ColorBlack)

	if runewidth.StringWidth(sp.Visual.Glyph) == 2 {
		// Wide glyphs (the player's emoji) draw as a single cell pair.
		r.putGlyph(sx, sy, sp.Visual.Glyph, style)
		return
	}

	// Solid blocks cover their bounds, at least one cell.
	cols := int(sp.Bounds.W / r.camera.UnitsPerCellX)
	rows := int(sp.Bounds.H / r.camera.UnitsPerCellY)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	runes := []rune(sp.Visual.Glyph)
	if len(runes) == 0 {
		return
	}
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < cols; dx++ {
			x, y := sx+dx, sy+dy
			if x < r.camera.ViewWidth && y < r.camera.ViewHeight {
				r.screen.SetContent(x, y, runes[0], nil, style)
			}
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
