package render

// Camera translates between world coordinates and terminal cells. Terminal
// cells are roughly twice as tall as wide, so the horizontal scale is half
// the vertical one to keep squares square on screen.
type Camera struct {
	OffsetX, OffsetY float64 // world position of the top-left cell
	ViewWidth        int     // in terminal columns
	ViewHeight       int     // in terminal rows

	UnitsPerCellX float64
	UnitsPerCellY float64
}

// Default world-units-per-cell scales.
const (
	DefaultUnitsPerCellX = 10
	DefaultUnitsPerCellY = 20
)

// NewCamera creates a camera for a viewport of viewW × viewH cells.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{
		ViewWidth:     viewW,
		ViewHeight:    viewH,
		UnitsPerCellX: DefaultUnitsPerCellX,
		UnitsPerCellY: DefaultUnitsPerCellY,
	}
}

// Center repositions the camera so world position (cx, cy) is mid-viewport.
func (c *Camera) Center(cx, cy float64) {
	c.OffsetX = cx - float64(c.ViewWidth)/2*c.UnitsPerCellX
	c.OffsetY = cy - float64(c.ViewHeight)/2*c.UnitsPerCellY
}

// WorldToScreen converts world (wx, wy) to screen cell (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	sx = int((wx - c.OffsetX) / c.UnitsPerCellX)
	sy = int((wy - c.OffsetY) / c.UnitsPerCellY)
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts a screen cell to the world position of its
// top-left corner.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	return float64(sx)*c.UnitsPerCellX + c.OffsetX, float64(sy)*c.UnitsPerCellY + c.OffsetY
}
