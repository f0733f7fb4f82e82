// Command map_viewer prints a level map as seen by the renderer: the
// tile grid with the spawn marked, plus the wall statistics the depth cap
// cares about. Useful when a hand-edited map renders unexpectedly.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/config"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/world"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration")
	mapPath := flag.String("map", "", "level map file (overrides the configured one)")
	flag.Parse()

	cfg := config.MustLoadConfig(*configPath)
	if *mapPath != "" {
		cfg.World.MapFile = *mapPath
	}

	var level *world.Map
	if cfg.World.MapFile != "" {
		var err error
		level, err = world.LoadMap(cfg.World.MapFile)
		if err != nil {
			log.Fatalf("load map: %v", err)
		}
		fmt.Printf("map: %s\n", cfg.World.MapFile)
	} else {
		level = world.BuiltinLevel()
		fmt.Println("map: builtin")
	}

	fmt.Printf("size: %dx%d tiles, %d world units per tile\n\n",
		level.Width, level.Height, cfg.GetTileSize())

	// Print north row first, matching the map file layout.
	walls := 0
	for ty := level.Height - 1; ty >= 0; ty-- {
		for tx := 0; tx < level.Width; tx++ {
			switch {
			case tx == level.StartX && ty == level.StartY:
				fmt.Print("+")
			case level.Solid(tx, ty):
				fmt.Print("#")
				walls++
			default:
				fmt.Print(".")
			}
		}
		fmt.Println()
	}

	sx, sy := level.SpawnWorld(cfg.GetTileSize())
	fmt.Printf("\nspawn: tile (%d,%d), world (%d,%d)\n", level.StartX, level.StartY, sx, sy)
	fmt.Printf("walls: %d of %d tiles\n", walls, level.Width*level.Height)

	// Longest open run bounds how far a ray can travel before the depth
	// cap has to catch it.
	longest := 0
	for ty := 0; ty < level.Height; ty++ {
		run := 0
		for tx := 0; tx < level.Width; tx++ {
			if level.Solid(tx, ty) {
				run = 0
				continue
			}
			run++
			if run > longest {
				longest = run
			}
		}
	}
	fmt.Printf("longest open run: %d tiles (depth cap %d)\n", longest, cfg.GetMaxDepth())
}
