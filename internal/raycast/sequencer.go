package raycast

import (
	"fmt"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/fixed"
)

// State enumerates the sequencer's pipeline stages. One full cycle
// Precalc -> VerticalWalk -> HorizontalWalk -> ComputeHeight -> DrawColumn
// -> NextColumn renders a single column; NextColumn loops back to Precalc
// until the last column, then returns to Idle with the frame complete.
type State int

const (
	StateIdle State = iota
	StatePrecalc
	StateVerticalWalk
	StateHorizontalWalk
	StateComputeHeight
	StateDrawColumn
	StateNextColumn
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePrecalc:
		return "Precalc"
	case StateVerticalWalk:
		return "VerticalWalk"
	case StateHorizontalWalk:
		return "HorizontalWalk"
	case StateComputeHeight:
		return "ComputeHeight"
	case StateDrawColumn:
		return "DrawColumn"
	case StateNextColumn:
		return "NextColumn"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Settings carries the render-time constants of the pipeline.
type Settings struct {
	ScreenWidth  int
	ScreenHeight int
	TileWidth    int
	MaxDepth     int

	// FOV is the field of view in angle units (1/1024ths of a turn).
	FOV int

	Palette Palette
}

// Pipeline is the top-level sequencer: a synchronous state machine that,
// once per frame, drives precalculation, both grid walks, height
// correction, and the column renderer for every screen column. All ray and
// column state is threaded through this struct; there is no internal
// parallelism and exactly one ray is live at a time.
type Pipeline struct {
	set     Settings
	src     TileSource
	sink    PixelSink
	walker  *Walker
	heights *HeightCalc
	column  *ColumnRenderer

	state     State
	col       int
	playerX   uint16
	playerY   uint16
	viewAngle fixed.Angle
	params    RayParams
	vres      WalkResult
	hres      WalkResult
	frameDone bool
}

// NewPipeline wires a pipeline over the given map source and pixel sink.
func NewPipeline(set Settings, src TileSource, sink PixelSink) *Pipeline {
	if set.ScreenWidth <= 0 || set.ScreenHeight <= 0 {
		panic(fmt.Sprintf("raycast: invalid screen size %dx%d", set.ScreenWidth, set.ScreenHeight))
	}
	if set.FOV <= 0 {
		panic(fmt.Sprintf("raycast: invalid field of view %d", set.FOV))
	}
	return &Pipeline{
		set:     set,
		src:     src,
		sink:    sink,
		walker:  NewWalker(src, set.TileWidth, set.MaxDepth),
		heights: NewHeightCalc(set.ScreenHeight, set.TileWidth),
		column:  NewColumnRenderer(sink, set.Palette, set.ScreenWidth, set.ScreenHeight),
	}
}

// StartFrame latches the player pose and begins a frame at column 0. It is
// the frame-start pulse of the hardware design: accepted only in the Idle
// state.
func (p *Pipeline) StartFrame(playerX, playerY uint16, heading fixed.Angle) {
	if p.state != StateIdle {
		panic(fmt.Sprintf("raycast: StartFrame in state %v", p.state))
	}
	p.playerX = playerX
	p.playerY = playerY
	p.viewAngle = heading
	p.col = 0
	p.frameDone = false
	p.state = StatePrecalc
}

// Step advances the sequencer by one tick and reports whether the frame is
// complete. The walks run to completion within their tick (the walker is
// depth-bounded); DrawColumn emits one pixel per tick.
func (p *Pipeline) Step() bool {
	switch p.state {
	case StateIdle:
		// Waiting for StartFrame.

	case StatePrecalc:
		p.params = Precalc(p.playerX, p.playerY, p.rayAngle(p.col), p.set.TileWidth)
		p.state = StateVerticalWalk

	case StateVerticalWalk:
		p.vres = p.walker.Walk(p.params.V, p.playerX, p.playerY)
		p.state = StateHorizontalWalk

	case StateHorizontalWalk:
		p.hres = p.walker.Walk(p.params.H, p.playerX, p.playerY)
		p.state = StateComputeHeight

	case StateComputeHeight:
		span := p.heights.Compute(p.vres, p.hres, p.rayAngle(p.col), p.viewAngle)
		p.column.Start(p.col, span)
		p.state = StateDrawColumn

	case StateDrawColumn:
		if p.column.Step() {
			p.state = StateNextColumn
		}

	case StateNextColumn:
		p.col++
		if p.col == p.set.ScreenWidth {
			p.frameDone = true
			p.state = StateIdle
			p.sink.FrameComplete()
		} else {
			p.state = StatePrecalc
		}
	}
	return p.frameDone
}

// RenderFrame drives a complete frame to the sink in one call.
func (p *Pipeline) RenderFrame(playerX, playerY uint16, heading fixed.Angle) {
	p.StartFrame(playerX, playerY, heading)
	for !p.Step() {
	}
}

// Reset returns every stage to idle and discards in-flight column and ray
// state. No partial column is delivered after a reset.
func (p *Pipeline) Reset() {
	p.state = StateIdle
	p.col = 0
	p.frameDone = false
	p.column.Reset()
}

// State returns the sequencer's current stage.
func (p *Pipeline) State() State { return p.state }

// Column returns the column currently being rendered.
func (p *Pipeline) Column() int { return p.col }

// FrameDone reports whether the last started frame has completed.
func (p *Pipeline) FrameDone() bool { return p.frameDone }

// rayAngle derives the per-column ray heading: the view angle offset by
// the column's share of the field of view, sweeping from +FOV/2 at column
// 0 down across the screen. Integer math, wrapping mod 1024.
func (p *Pipeline) rayAngle(col int) fixed.Angle {
	offset := p.set.FOV/2 - col*p.set.FOV/p.set.ScreenWidth
	return p.viewAngle.Add(offset)
}

// ColumnCaster evaluates single columns in isolation, without the
// sequencer. It backs the parallel snapshot path: columns rendered
// concurrently on independent state produce the same pixels as the
// sequential pipeline, differing only in latency.
type ColumnCaster struct {
	set     Settings
	walker  *Walker
	heights *HeightCalc
}

// NewColumnCaster builds a caster over src. The caster itself is
// stateless per call and safe for concurrent use.
func NewColumnCaster(set Settings, src TileSource) *ColumnCaster {
	return &ColumnCaster{
		set:     set,
		walker:  NewWalker(src, set.TileWidth, set.MaxDepth),
		heights: NewHeightCalc(set.ScreenHeight, set.TileWidth),
	}
}

// Span computes the wall slice for one column of the given pose.
func (cc *ColumnCaster) Span(playerX, playerY uint16, heading fixed.Angle, col int) ColumnSpan {
	if col < 0 || col >= cc.set.ScreenWidth {
		panic(fmt.Sprintf("raycast: column %d outside screen width %d", col, cc.set.ScreenWidth))
	}
	offset := cc.set.FOV/2 - col*cc.set.FOV/cc.set.ScreenWidth
	rayAngle := heading.Add(offset)
	params := Precalc(playerX, playerY, rayAngle, cc.set.TileWidth)
	vres := cc.walker.Walk(params.V, playerX, playerY)
	hres := cc.walker.Walk(params.H, playerX, playerY)
	return cc.heights.Compute(vres, hres, rayAngle, heading)
}

// Colors renders a span into one color per row.
func (cc *ColumnCaster) Colors(span ColumnSpan) []Color {
	out := make([]Color, cc.set.ScreenHeight)
	for row := range out {
		out[row] = spanColor(cc.set.Palette, span, row)
	}
	return out
}
