package world

import (
	"math/rand"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/threading/core"
)

// GeneratorConfig tunes random level generation.
type GeneratorConfig struct {
	Width  int
	Height int
	Seed   int64

	// WallChance is the per-tile probability, in percent, of an interior
	// obstacle.
	WallChance int
}

// GenerateLevel builds a random bordered level: solid outer walls,
// scattered interior obstacles, and a spawn on a guaranteed-clear tile.
// Interior rows are filled in parallel chunks; each chunk derives its own
// rng stream from the seed so the layout is deterministic regardless of
// scheduling.
func GenerateLevel(cfg GeneratorConfig) *Map {
	if cfg.Width < 3 || cfg.Height < 3 {
		panic("world: generated level needs at least 3x3 tiles")
	}
	if cfg.WallChance < 0 || cfg.WallChance > 100 {
		panic("world: wall chance is a percentage")
	}

	rows := make([][]uint8, cfg.Height)

	pool := core.CreateDefaultWorkerPool()
	defer pool.Stop()

	pool.ParallelFor(0, cfg.Height, func(ty int) {
		row := make([]uint8, cfg.Width)
		rng := rand.New(rand.NewSource(cfg.Seed + int64(ty)*7919))
		for tx := 0; tx < cfg.Width; tx++ {
			switch {
			case tx == 0 || tx == cfg.Width-1 || ty == 0 || ty == cfg.Height-1:
				row[tx] = CellWall
			case rng.Intn(100) < cfg.WallChance:
				row[tx] = CellWall
			}
		}
		rows[ty] = row
	})

	// Clear a spawn pocket near the south-west corner so the player never
	// starts inside an obstacle.
	for ty := 1; ty <= 2 && ty < cfg.Height-1; ty++ {
		for tx := 1; tx <= 2 && tx < cfg.Width-1; tx++ {
			rows[cfg.Height-1-ty][tx] = CellEmpty
		}
	}

	m := NewMap(rows)
	m.StartX = 1
	m.StartY = 1
	return m
}
