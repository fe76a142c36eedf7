package generate

import (
	"math"
	"math/rand"

	"starfield/internal/ecs"
	"starfield/internal/factory"

	"github.com/gdamore/tcell/v2"
)

// ChunkPos identifies a chunk by its integer grid coordinates.
type ChunkPos struct {
	X, Y int
}

// terrainPalette holds the muted colors terrain blocks are filled with.
var terrainPalette = []tcell.Color{
	tcell.NewRGBColor(100, 100, 100),
	tcell.NewRGBColor(150, 150, 150),
	tcell.NewRGBColor(80, 80, 80),
}

// Terrain block size bounds and per-chunk object count bounds.
const (
	terrainMinSize  = 15
	terrainMaxSize  = 30
	terrainMinCount = 3
	terrainMaxCount = 8
)

// TerrainGenerator places static decorative blocks chunk by chunk. A chunk is
// generated at most once; the generated set only ever grows (no eviction, so
// memory grows with explored area for the process lifetime).
type TerrainGenerator struct {
	world     *ecs.World
	chunkSize int
	rng       *rand.Rand
	generated map[ChunkPos]bool
}

// NewTerrainGenerator creates a generator over world. All random draws come
// from rng, so the caller controls reproducibility by seeding it once.
func NewTerrainGenerator(world *ecs.World, chunkSize int, rng *rand.Rand) *TerrainGenerator {
	return &TerrainGenerator{
		world:     world,
		chunkSize: chunkSize,
		rng:       rng,
		generated: make(map[ChunkPos]bool),
	}
}

// ChunkSize returns the chunk edge length in world units.
func (g *TerrainGenerator) ChunkSize() int { return g.chunkSize }

// ChunkCoords maps a world position to the chunk containing it.
// Floor division, so negative coordinates land in negative chunks.
func (g *TerrainGenerator) ChunkCoords(x, y float64) ChunkPos {
	return ChunkPos{
		X: int(math.Floor(x / float64(g.chunkSize))),
		Y: int(math.Floor(y / float64(g.chunkSize))),
	}
}

// Generated reports whether the chunk has already been generated.
func (g *TerrainGenerator) Generated(pos ChunkPos) bool { return g.generated[pos] }

// ChunkCount returns how many chunks have been generated so far.
func (g *TerrainGenerator) ChunkCount() int { return len(g.generated) }

// GenerateChunk populates one chunk with 3–8 terrain blocks scattered
// uniformly over the chunk's world-space square. Generating a chunk twice is
// a no-op.
func (g *TerrainGenerator) GenerateChunk(pos ChunkPos) {
	if g.generated[pos] {
		return
	}
	g.generated[pos] = true

	baseX := float64(pos.X * g.chunkSize)
	baseY := float64(pos.Y * g.chunkSize)

	count := terrainMinCount + g.rng.Intn(terrainMaxCount-terrainMinCount+1)
	for i := 0; i < count; i++ {
		size := float64(terrainMinSize + g.rng.Intn(terrainMaxSize-terrainMinSize+1))
		color := terrainPalette[g.rng.Intn(len(terrainPalette))]
		x := baseX + g.rng.Float64()*float64(g.chunkSize)
		y := baseY + g.rng.Float64()*float64(g.chunkSize)
		factory.NewBlock(g.world, x, y, color, size)
	}
}
