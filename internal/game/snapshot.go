package game

import (
	"fmt"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/config"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/fixed"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/framebuffer"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/raycast"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/world"
)

// Pose is a render viewpoint: position in world units, heading in angle
// units.
type Pose struct {
	X       uint16
	Y       uint16
	Heading uint16
}

// RenderSnapshot renders a single frame from the level's spawn pose into a
// fresh framebuffer, without opening a window.
func RenderSnapshot(cfg *config.Config, level *world.Map) *framebuffer.Buffer {
	player := NewPlayer(cfg, level)
	x, y, heading := player.Pose()
	return RenderSnapshotAt(cfg, level, Pose{X: x, Y: y, Heading: uint16(heading)})
}

// RenderSnapshotAt renders a single frame from an arbitrary pose. The
// frame goes through the sequential pipeline, pixel by pixel, so a
// snapshot exercises the same delivery contract the interactive path is
// checked against.
func RenderSnapshotAt(cfg *config.Config, level *world.Map, pose Pose) *framebuffer.Buffer {
	fb := framebuffer.New(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	pipeline := raycast.NewPipeline(PipelineSettings(cfg), level, fb)
	pipeline.RenderFrame(pose.X, pose.Y, fixed.Angle(pose.Heading))
	return fb
}

// SaveSnapshot renders the spawn-pose frame and writes it to path, scaled
// by the configured window scale.
func SaveSnapshot(cfg *config.Config, level *world.Map, path string) error {
	fb := RenderSnapshot(cfg, level)
	if err := fb.SaveScaledPNG(path, cfg.Display.WindowScale); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
