// starfield flies a little ship through an endless procedurally generated
// field of debris. Build and run:
//
//	go build ./cmd/starfield
//	./starfield [--seed 42] [--chunk 200] [--radius 600]
package main

import (
	"flag"
	"fmt"
	"os"

	"starfield/internal/game"
	"starfield/internal/generate"

	"github.com/pkg/profile"
)

func main() {
	seed := flag.Int64("seed", 0, "world seed (0 = time-derived)")
	chunk := flag.Int("chunk", generate.DefaultChunkSize, "terrain chunk size in world units")
	radius := flag.Float64("radius", generate.DefaultGenerationRadius, "terrain generation radius")
	spawnRadius := flag.Float64("spawn-radius", generate.DefaultSpawnRadius, "decoration scatter radius")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	g, err := game.New(generate.Config{
		Seed:             *seed,
		ChunkSize:        *chunk,
		GenerationRadius: *radius,
		SpawnRadius:      *spawnRadius,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
