package generate

import (
	"math/rand"
	"time"
)

// Defaults for the generation config.
const (
	DefaultChunkSize        = 200
	DefaultGenerationRadius = 600
	DefaultSpawnRadius      = 1000
	DefaultScatterCount     = 15
)

// Config drives procedural world generation. Zero fields take defaults.
type Config struct {
	ChunkSize        int     // edge of one terrain chunk in world units
	Seed             int64   // 0 picks a time-derived seed
	GenerationRadius float64 // terrain exists within this distance of the observer
	SpawnRadius      float64 // outer distance for scattered decorations
	Rand             *rand.Rand
}

// withDefaults returns a copy of c with every zero field filled in.
// All random draws for one world come from the single Rand created here, so
// runs with the same seed generate identical worlds.
func (c Config) withDefaults() Config {
	if c.ChunkSize == 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.GenerationRadius == 0 {
		c.GenerationRadius = DefaultGenerationRadius
	}
	if c.SpawnRadius == 0 {
		c.SpawnRadius = DefaultSpawnRadius
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(c.Seed))
	}
	return c
}
