package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/config"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/framebuffer"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/raycast"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/threading"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/threading/monitoring"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/threading/rendering"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/world"
)

// Game owns the live render loop: it polls input, advances the player,
// renders the frame into the framebuffer, and blits it to the ebiten
// screen. The per-frame render runs the column caster across the worker
// pool, with whole frames memoized by pose.
type Game struct {
	cfg    *config.Config
	level  *world.Map
	player *Player

	caster    *raycast.ColumnCaster
	fb        *framebuffer.Buffer
	threading *threading.ThreadingComponents

	input      *InputHandler
	frameImage *ebiten.Image
	showStats  bool
}

// PipelineSettings derives the raycast settings from the configuration.
func PipelineSettings(cfg *config.Config) raycast.Settings {
	return raycast.Settings{
		ScreenWidth:  cfg.GetScreenWidth(),
		ScreenHeight: cfg.GetScreenHeight(),
		TileWidth:    cfg.GetTileSize(),
		MaxDepth:     cfg.GetMaxDepth(),
		FOV:          cfg.GetFOV(),
		Palette: raycast.Palette{
			Ceiling:        raycast.Color(cfg.Graphics.Palette.Ceiling),
			Floor:          raycast.Color(cfg.Graphics.Palette.Floor),
			WallVertical:   raycast.Color(cfg.Graphics.Palette.WallVertical),
			WallHorizontal: raycast.Color(cfg.Graphics.Palette.WallHorizontal),
		},
	}
}

// NewGame wires the game over a loaded level.
func NewGame(cfg *config.Config, level *world.Map) *Game {
	g := &Game{
		cfg:       cfg,
		level:     level,
		player:    NewPlayer(cfg, level),
		caster:    raycast.NewColumnCaster(PipelineSettings(cfg), level),
		fb:        framebuffer.New(cfg.GetScreenWidth(), cfg.GetScreenHeight()),
		threading: threading.NewThreadingComponents(),
	}
	g.input = NewInputHandler(g)
	return g
}

// Update advances one tick: input, movement, then the frame render.
func (g *Game) Update() error {
	frameTimer := g.threading.PerformanceMonitor.StartFrame()
	defer frameTimer.EndFrame()

	g.input.HandleInput()
	g.RenderFrame()
	return nil
}

// RenderFrame fills the framebuffer for the current pose. Frames are
// memoized by pose, so standing still costs a cache lookup; on a miss
// every column is cast in parallel and blitted in column order.
func (g *Game) RenderFrame() {
	px, py, heading := g.player.Pose()
	key := rendering.PoseKey{X: px, Y: py, Heading: uint16(heading)}

	monitor := g.threading.PerformanceMonitor
	hit := true
	columns := g.threading.FrameCache.GetOrRender(key, func() [][]raycast.Color {
		hit = false
		timer := monitor.StartRaycast()
		defer timer.EndRaycast()
		return g.threading.ParallelRenderer.RenderColumns(g.cfg.GetScreenWidth(), func(col int) []raycast.Color {
			return g.caster.Colors(g.caster.Span(px, py, heading, col))
		})
	})
	if hit {
		monitor.RecordCacheHit()
	} else {
		monitor.RecordCacheMiss()
		monitor.AddColumnsRendered(uint64(g.cfg.GetScreenWidth()))
	}

	for col, rows := range columns {
		g.fb.BlitColumn(col, rows)
	}
	g.fb.EndBlitFrame()
}

// Draw copies the framebuffer to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frameImage == nil {
		g.frameImage = ebiten.NewImage(g.fb.Width(), g.fb.Height())
	}
	g.frameImage.WritePixels(g.fb.RGBA())
	screen.DrawImage(g.frameImage, nil)

	if g.showStats {
		g.drawStats(screen)
	}
}

// Layout reports the internal render resolution; ebiten scales it to the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}

// Shutdown stops the worker pool.
func (g *Game) Shutdown() {
	g.threading.Shutdown()
}

// MovePlayerForward steps the player along their heading; dir is +1
// forward, -1 backward.
func (g *Game) MovePlayerForward(dir int) {
	g.player.MoveForward(dir)
}

// TurnPlayer rotates the player; dir is +1 counter-clockwise, -1
// clockwise.
func (g *Game) TurnPlayer(dir int) {
	g.player.Turn(dir)
}

// PlayerPose returns the player's current pose.
func (g *Game) PlayerPose() Pose {
	x, y, heading := g.player.Pose()
	return Pose{X: x, Y: y, Heading: uint16(heading)}
}

// Framebuffer exposes the rendered frame.
func (g *Game) Framebuffer() *framebuffer.Buffer {
	return g.fb
}

// Metrics returns the renderer's performance counters.
func (g *Game) Metrics() monitoring.RenderMetrics {
	return g.threading.GetPerformanceMetrics()
}
