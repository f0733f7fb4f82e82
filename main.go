package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/config"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/game"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/world"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration")
	mapPath := flag.String("map", "", "level map file (overrides the configured one)")
	snapshotPath := flag.String("snapshot", "", "render one frame to this PNG and exit")
	scale := flag.Int("scale", 0, "window scale factor (overrides the configured one)")
	randomSeed := flag.Int64("random", 0, "play a randomly generated level with this seed")
	flag.Parse()

	// Load configuration
	cfg := config.MustLoadConfig(*configPath)
	if *scale > 0 {
		cfg.Display.WindowScale = *scale
	}
	if *mapPath != "" {
		cfg.World.MapFile = *mapPath
	}

	// Load the level, falling back to the builtin layout
	var level *world.Map
	switch {
	case *randomSeed != 0:
		level = world.GenerateLevel(world.GeneratorConfig{
			Width:      cfg.GetMapWidth(),
			Height:     cfg.GetMapHeight(),
			Seed:       *randomSeed,
			WallChance: 15,
		})
	case cfg.World.MapFile != "":
		level = world.MustLoadMap(cfg.World.MapFile)
	default:
		level = world.BuiltinLevel()
	}

	// Headless snapshot mode
	if *snapshotPath != "" {
		if err := game.SaveSnapshot(cfg, level, *snapshotPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *snapshotPath)
		return
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth()*cfg.Display.WindowScale,
		cfg.GetScreenHeight()*cfg.Display.WindowScale)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, level)
	defer g.Shutdown()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
