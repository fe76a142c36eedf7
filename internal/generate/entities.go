package generate

import (
	"errors"
	"math"
	"math/rand"

	"starfield/internal/ecs"
	"starfield/internal/factory"

	"github.com/gdamore/tcell/v2"
)

// decorPalette holds the bright colors scattered decorations are filled with.
var decorPalette = []tcell.Color{
	tcell.NewRGBColor(255, 0, 0),
	tcell.NewRGBColor(0, 0, 255),
	tcell.NewRGBColor(255, 255, 0),
	tcell.NewRGBColor(255, 0, 255),
	tcell.NewRGBColor(0, 255, 255),
}

const (
	decorSize        = 20 // fixed edge length of a decoration
	decorMinDistance = 50 // scatter never lands closer than this to the center
)

// EntityGenerator scatters decorative entities around a focal point and
// remembers what it spawned so it can take them back. It has no chunk memory;
// every Scatter call adds more entities, and bounding the total is the
// caller's responsibility.
type EntityGenerator struct {
	world       *ecs.World
	spawnRadius float64
	rng         *rand.Rand
	spawned     []ecs.EntityID
}

// NewEntityGenerator creates a generator over world drawing from rng.
func NewEntityGenerator(world *ecs.World, spawnRadius float64, rng *rand.Rand) *EntityGenerator {
	return &EntityGenerator{
		world:       world,
		spawnRadius: spawnRadius,
		rng:         rng,
	}
}

// Scatter creates count decorations at a uniform random angle and a uniform
// random distance in [decorMinDistance, spawnRadius] from (cx, cy).
func (g *EntityGenerator) Scatter(cx, cy float64, count int) {
	for i := 0; i < count; i++ {
		color := decorPalette[g.rng.Intn(len(decorPalette))]
		angle := g.rng.Float64() * 2 * math.Pi
		distance := decorMinDistance + g.rng.Float64()*(g.spawnRadius-decorMinDistance)
		x := cx + distance*math.Cos(angle)
		y := cy + distance*math.Sin(angle)
		id := factory.NewBlock(g.world, x, y, color, decorSize)
		g.spawned = append(g.spawned, id)
	}
}

// Clear destroys every entity this generator spawned and empties its list.
// Entities someone else already destroyed are skipped without complaint.
func (g *EntityGenerator) Clear() {
	for _, id := range g.spawned {
		if err := g.world.DestroyEntity(id); err != nil && !errors.Is(err, ecs.ErrNotFound) {
			// DestroyEntity only ever reports ErrNotFound today; anything
			// else would mean the world contract changed under us.
			panic(err)
		}
	}
	g.spawned = g.spawned[:0]
}

// Spawned returns the ids of the currently tracked decorations.
func (g *EntityGenerator) Spawned() []ecs.EntityID { return g.spawned }
