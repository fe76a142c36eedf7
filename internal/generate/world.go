package generate

import (
	"math"

	"starfield/internal/ecs"
)

// WorldGenerator orchestrates terrain chunks and decoration scatter around a
// moving observer. One instance serves one world; multiple observers sharing
// it also share its last-position hysteresis.
type WorldGenerator struct {
	cfg     Config
	terrain *TerrainGenerator
	decor   *EntityGenerator

	lastX, lastY float64
	initialized  bool
	threshold    float64 // minimum movement before terrain is re-examined
}

// NewWorldGenerator builds the generator pair over world. Zero config fields
// take defaults; the update threshold is a quarter chunk.
func NewWorldGenerator(world *ecs.World, cfg Config) *WorldGenerator {
	cfg = cfg.withDefaults()
	return &WorldGenerator{
		cfg:       cfg,
		terrain:   NewTerrainGenerator(world, cfg.ChunkSize, cfg.Rand),
		decor:     NewEntityGenerator(world, cfg.SpawnRadius, cfg.Rand),
		threshold: float64(cfg.ChunkSize) / 4,
	}
}

// Seed returns the seed that drives this world's random draws.
func (g *WorldGenerator) Seed() int64 { return g.cfg.Seed }

// Terrain exposes the chunk generator (HUD and tests read its chunk set).
func (g *WorldGenerator) Terrain() *TerrainGenerator { return g.terrain }

// Decorations exposes the scatter generator.
func (g *WorldGenerator) Decorations() *EntityGenerator { return g.decor }

// UpdateThreshold returns the movement hysteresis distance.
func (g *WorldGenerator) UpdateThreshold() float64 { return g.threshold }

// Initialized reports whether InitializeWorld has run.
func (g *WorldGenerator) Initialized() bool { return g.initialized }

// LastPosition returns the observer position recorded by the last terrain
// pass. Only meaningful once Initialized.
func (g *WorldGenerator) LastPosition() (x, y float64) { return g.lastX, g.lastY }

// InitializeWorld generates the terrain ring around (x, y), scatters the
// initial decorations there, and records (x, y) as the last position.
func (g *WorldGenerator) InitializeWorld(x, y float64) {
	g.GenerateArea(x, y)
	g.decor.Scatter(x, y, DefaultScatterCount)
	g.lastX, g.lastY = x, y
	g.initialized = true
}

// Update regenerates terrain around (x, y) when the observer has moved more
// than the update threshold since the last pass. Movement at or below the
// threshold is a no-op, so terrain is not re-examined every tick. A never-
// initialized generator defers to InitializeWorld.
func (g *WorldGenerator) Update(x, y float64) {
	if !g.initialized {
		g.InitializeWorld(x, y)
		return
	}
	moved := math.Hypot(x-g.lastX, y-g.lastY)
	if moved > g.threshold {
		g.GenerateArea(x, y)
		g.lastX, g.lastY = x, y
	}
}

// GenerateArea ensures every chunk whose center lies within the generation
// radius of (x, y) exists: it scans the bounding square of chunks and filters
// by Euclidean distance, approximating circular coverage.
func (g *WorldGenerator) GenerateArea(x, y float64) {
	chunkSize := float64(g.cfg.ChunkSize)
	center := g.terrain.ChunkCoords(x, y)
	span := int(math.Ceil(g.cfg.GenerationRadius/chunkSize)) + 1

	for dx := -span; dx <= span; dx++ {
		for dy := -span; dy <= span; dy++ {
			pos := ChunkPos{X: center.X + dx, Y: center.Y + dy}
			centerX := (float64(pos.X) + 0.5) * chunkSize
			centerY := (float64(pos.Y) + 0.5) * chunkSize
			if math.Hypot(centerX-x, centerY-y) <= g.cfg.GenerationRadius {
				g.terrain.GenerateChunk(pos)
			}
		}
	}
}
