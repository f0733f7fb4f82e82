package raycast

import "fmt"

// PixelSink receives the rendered pixel stream. Pixels for a frame arrive
// in strict column-major, then row-major order; FrameComplete fires exactly
// once per frame, after the last pixel of the last column.
type PixelSink interface {
	PutPixel(column, row int, c Color)
	FrameComplete()
}

// ColumnRenderer streams one pixel per row for the current column, walking
// rows in increasing order with no gaps or repeats. It is a small
// idle/drawing state machine restarted for every column.
type ColumnRenderer struct {
	sink         PixelSink
	pal          Palette
	screenWidth  int
	screenHeight int

	column  int
	span    ColumnSpan
	row     int
	drawing bool
}

// NewColumnRenderer builds a renderer emitting into sink.
func NewColumnRenderer(sink PixelSink, pal Palette, screenWidth, screenHeight int) *ColumnRenderer {
	return &ColumnRenderer{
		sink:         sink,
		pal:          pal,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Start latches a column and its span and enters the drawing state.
// Out-of-range columns and malformed spans are caller contract violations
// and panic at this boundary; the pipeline has no fallback for them.
func (cr *ColumnRenderer) Start(column int, span ColumnSpan) {
	if column < 0 || column >= cr.screenWidth {
		panic(fmt.Sprintf("raycast: column %d outside screen width %d", column, cr.screenWidth))
	}
	if span.DrawBegin > span.DrawEnd || span.DrawBegin < 0 || span.DrawEnd > cr.screenHeight {
		panic(fmt.Sprintf("raycast: invalid span [%d, %d) for screen height %d",
			span.DrawBegin, span.DrawEnd, cr.screenHeight))
	}
	cr.column = column
	cr.span = span
	cr.row = 0
	cr.drawing = true
}

// Step emits the next row's pixel and reports whether the column is done.
func (cr *ColumnRenderer) Step() bool {
	if !cr.drawing {
		return true
	}
	cr.sink.PutPixel(cr.column, cr.row, spanColor(cr.pal, cr.span, cr.row))
	cr.row++
	if cr.row == cr.screenHeight {
		cr.drawing = false
		return true
	}
	return false
}

// Render drives a whole column in one call.
func (cr *ColumnRenderer) Render(column int, span ColumnSpan) {
	cr.Start(column, span)
	for !cr.Step() {
	}
}

// Reset abandons any in-progress column and returns to idle.
func (cr *ColumnRenderer) Reset() {
	cr.drawing = false
	cr.row = 0
}
