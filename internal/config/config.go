package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all renderer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Raycast  RaycastConfig  `yaml:"raycast"`
	Movement MovementConfig `yaml:"movement"`
	Graphics GraphicsConfig `yaml:"graphics"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowScale  int    `yaml:"window_scale"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	TileSize  int    `yaml:"tile_size"`
	MapWidth  int    `yaml:"map_width"`
	MapHeight int    `yaml:"map_height"`
	MapFile   string `yaml:"map_file"`
}

type RaycastConfig struct {
	MaxDepth      int `yaml:"max_depth"`
	FOVAngleUnits int `yaml:"fov_angle_units"`
}

type MovementConfig struct {
	// MoveSpeed is in world units per tick, TurnSpeed in angle units
	// (1/1024ths of a turn) per tick.
	MoveSpeed int `yaml:"move_speed"`
	TurnSpeed int `yaml:"turn_speed"`
}

type GraphicsConfig struct {
	Palette PaletteConfig `yaml:"palette"`
}

// PaletteConfig holds the four legal 12-bit RGB444 surface colors.
type PaletteConfig struct {
	Ceiling        uint16 `yaml:"ceiling"`
	Floor          uint16 `yaml:"floor"`
	WallVertical   uint16 `yaml:"wall_vertical"`
	WallHorizontal uint16 `yaml:"wall_horizontal"`
}

// DefaultConfig returns the canonical configuration: a 160x120 view over
// 64-unit tiles on an 8x8 map, depth-capped at 8 tiles, with a 160-unit
// field of view (one angle unit per column).
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  160,
			ScreenHeight: 120,
			WindowScale:  4,
			WindowTitle:  "wolfenstein-on-fpga",
		},
		World: WorldConfig{
			TileSize:  64,
			MapWidth:  8,
			MapHeight: 8,
			MapFile:   "assets/level.map",
		},
		Raycast: RaycastConfig{
			MaxDepth:      8,
			FOVAngleUnits: 160,
		},
		Movement: MovementConfig{
			MoveSpeed: 3,
			TurnSpeed: 8,
		},
		Graphics: GraphicsConfig{
			Palette: PaletteConfig{
				Ceiling:        0x39F,
				Floor:          0x554,
				WallVertical:   0xC22,
				WallHorizontal: 0x811,
			},
		},
	}
}

// LoadConfig loads the configuration from a YAML file. Missing keys keep
// their canonical defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error.
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects configurations the fixed-point pipeline cannot serve.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.World.TileSize <= 0 || c.World.TileSize&(c.World.TileSize-1) != 0 {
		return fmt.Errorf("tile size %d must be a positive power of two", c.World.TileSize)
	}
	if c.Raycast.MaxDepth <= 0 {
		return fmt.Errorf("max ray depth %d must be positive", c.Raycast.MaxDepth)
	}
	if c.Raycast.FOVAngleUnits <= 0 || c.Raycast.FOVAngleUnits >= 512 {
		return fmt.Errorf("field of view %d angle units out of range (0, 512)", c.Raycast.FOVAngleUnits)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() int {
	return c.World.TileSize
}

func (c *Config) GetMapWidth() int {
	return c.World.MapWidth
}

func (c *Config) GetMapHeight() int {
	return c.World.MapHeight
}

func (c *Config) GetMaxDepth() int {
	return c.Raycast.MaxDepth
}

func (c *Config) GetFOV() int {
	return c.Raycast.FOVAngleUnits
}

func (c *Config) GetMoveSpeed() int {
	return c.Movement.MoveSpeed
}

func (c *Config) GetTurnSpeed() int {
	return c.Movement.TurnSpeed
}
