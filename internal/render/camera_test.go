package render

import "testing"

func TestCameraCenter(t *testing.T) {
	c := NewCamera(80, 24)
	c.Center(0, 0)

	// (0,0) lands in the middle cell of the viewport.
	sx, sy, visible := c.WorldToScreen(0, 0)
	if !visible {
		t.Fatal("camera center must be visible")
	}
	if sx != 40 || sy != 12 {
		t.Fatalf("center at cell (%d,%d), want (40,12)", sx, sy)
	}
}

func TestWorldToScreenScales(t *testing.T) {
	c := NewCamera(80, 24)
	c.Center(0, 0)

	// One cell right is UnitsPerCellX world units; one down is UnitsPerCellY.
	sx, sy, _ := c.WorldToScreen(DefaultUnitsPerCellX, DefaultUnitsPerCellY)
	if sx != 41 || sy != 13 {
		t.Fatalf("scaled cell (%d,%d), want (41,13)", sx, sy)
	}
}

func TestWorldToScreenOffViewport(t *testing.T) {
	c := NewCamera(80, 24)
	c.Center(0, 0)

	if _, _, visible := c.WorldToScreen(10000, 0); visible {
		t.Fatal("far-away position reported visible")
	}
	if _, _, visible := c.WorldToScreen(0, -10000); visible {
		t.Fatal("far-away position reported visible")
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	c := NewCamera(80, 24)
	c.Center(500, -300)

	wx, wy := c.ScreenToWorld(10, 5)
	sx, sy, _ := c.WorldToScreen(wx, wy)
	if sx != 10 || sy != 5 {
		t.Fatalf("round trip gave cell (%d,%d), want (10,5)", sx, sy)
	}
}
