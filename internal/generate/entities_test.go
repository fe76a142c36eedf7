package generate

import (
	"math"
	"math/rand"
	"testing"

	"starfield/internal/component"
	"starfield/internal/ecs"
)

func newDecor(seed int64, radius float64) (*ecs.World, *EntityGenerator) {
	w := ecs.NewWorld()
	rng := rand.New(rand.NewSource(seed))
	return w, NewEntityGenerator(w, radius, rng)
}

func TestScatterCountAndTracking(t *testing.T) {
	w, g := newDecor(1, 1000)
	g.Scatter(0, 0, 15)

	if len(g.Spawned()) != 15 {
		t.Fatalf("tracked %d entities, want 15", len(g.Spawned()))
	}
	if n := len(w.Query(component.CPosition, component.CSprite)); n != 15 {
		t.Fatalf("world holds %d decorations, want 15", n)
	}
}

func TestScatterDistanceWithinBand(t *testing.T) {
	w, g := newDecor(2, 1000)
	const cx, cy = 300.0, -120.0
	g.Scatter(cx, cy, 50)

	for _, id := range g.Spawned() {
		p := w.Get(id, component.CPosition).(component.Position)
		d := math.Hypot(p.X-cx, p.Y-cy)
		if d < decorMinDistance || d > 1000 {
			t.Fatalf("decoration at distance %v, want [%d,1000]", d, decorMinDistance)
		}
		sp := w.Get(id, component.CSprite).(component.Sprite)
		if sp.Visual.Size != decorSize {
			t.Fatalf("decoration size %v, want %d", sp.Visual.Size, decorSize)
		}
	}
}

func TestRepeatedScatterAccumulates(t *testing.T) {
	// No chunk memory: every call adds more entities.
	_, g := newDecor(3, 1000)
	g.Scatter(0, 0, 15)
	g.Scatter(0, 0, 15)
	if len(g.Spawned()) != 30 {
		t.Fatalf("tracked %d entities after two scatters, want 30", len(g.Spawned()))
	}
}

func TestClearDestroysTrackedEntities(t *testing.T) {
	w, g := newDecor(4, 1000)
	g.Scatter(0, 0, 10)
	ids := append([]ecs.EntityID(nil), g.Spawned()...)

	g.Clear()

	if len(g.Spawned()) != 0 {
		t.Fatalf("spawned list not emptied: %d left", len(g.Spawned()))
	}
	for _, id := range ids {
		if w.Alive(id) {
			t.Fatalf("entity %d still alive after Clear", id)
		}
	}
}

func TestClearToleratesAlreadyDestroyed(t *testing.T) {
	w, g := newDecor(5, 1000)
	g.Scatter(0, 0, 5)

	// Someone else destroys one of the tracked entities first.
	if err := w.DestroyEntity(g.Spawned()[2]); err != nil {
		t.Fatalf("destroy: %v", err)
	}

	g.Clear() // must not panic
	if len(g.Spawned()) != 0 {
		t.Fatal("spawned list not emptied")
	}
}
