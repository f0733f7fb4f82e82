// Package framebuffer stores the rendered RGB444 frame and converts it
// for display or export.
package framebuffer

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/raycast"
)

// Buffer is a column-major pixel store fed by the render pipeline. It
// enforces the pipeline's delivery contract: pixels arrive column by
// column, row by row, with no gaps, and a frame-complete pulse follows the
// last pixel. Out-of-order writes are a pipeline bug and panic.
type Buffer struct {
	width  int
	height int
	pixels []raycast.Color

	nextCol int
	nextRow int
	frames  uint64

	rgba []byte // persistent conversion buffer, row-major RGBA8
}

// New allocates a buffer for a width x height frame.
func New(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("framebuffer: invalid size %dx%d", width, height))
	}
	return &Buffer{
		width:  width,
		height: height,
		pixels: make([]raycast.Color, width*height),
		rgba:   make([]byte, width*height*4),
	}
}

// Width returns the frame width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the frame height in pixels.
func (b *Buffer) Height() int { return b.height }

// Frames returns the number of completed frames.
func (b *Buffer) Frames() uint64 { return b.frames }

// PutPixel stores one pixel from the render stream.
func (b *Buffer) PutPixel(column, row int, c raycast.Color) {
	if column != b.nextCol || row != b.nextRow {
		panic(fmt.Sprintf("framebuffer: pixel (%d,%d) out of order, expected (%d,%d)",
			column, row, b.nextCol, b.nextRow))
	}
	b.pixels[column*b.height+row] = c
	b.nextRow++
	if b.nextRow == b.height {
		b.nextRow = 0
		b.nextCol++
	}
}

// FrameComplete marks the end of a frame. The full frame must have been
// delivered.
func (b *Buffer) FrameComplete() {
	if b.nextCol != b.width || b.nextRow != 0 {
		panic(fmt.Sprintf("framebuffer: frame complete after column %d row %d, expected a full %dx%d frame",
			b.nextCol, b.nextRow, b.width, b.height))
	}
	b.nextCol = 0
	b.nextRow = 0
	b.frames++
}

// BlitColumn stores a whole column at once. The parallel render path
// collects columns concurrently and blits them in order; the stream cursor
// is bypassed, so mix it with PutPixel only between frames.
func (b *Buffer) BlitColumn(column int, rows []raycast.Color) {
	if column < 0 || column >= b.width {
		panic(fmt.Sprintf("framebuffer: column %d outside width %d", column, b.width))
	}
	if len(rows) != b.height {
		panic(fmt.Sprintf("framebuffer: column of %d rows, want %d", len(rows), b.height))
	}
	copy(b.pixels[column*b.height:], rows)
}

// EndBlitFrame counts a frame assembled through BlitColumn.
func (b *Buffer) EndBlitFrame() {
	b.nextCol = 0
	b.nextRow = 0
	b.frames++
}

// At returns the stored color at (column, row).
func (b *Buffer) At(column, row int) raycast.Color {
	return b.pixels[column*b.height+row]
}

// Reset clears the stream cursor so a new frame starts at (0,0). Pixel
// contents are left as-is; the next frame overwrites them.
func (b *Buffer) Reset() {
	b.nextCol = 0
	b.nextRow = 0
}

// RGBA converts the frame to row-major 8-bit RGBA suitable for
// ebiten.Image.WritePixels. The returned slice is reused across calls.
func (b *Buffer) RGBA() []byte {
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			r, g, bl := b.pixels[col*b.height+row].RGBA8()
			idx := (row*b.width + col) * 4
			b.rgba[idx] = r
			b.rgba[idx+1] = g
			b.rgba[idx+2] = bl
			b.rgba[idx+3] = 0xFF
		}
	}
	return b.rgba
}

// Image copies the frame into a standalone image.RGBA.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.RGBA())
	return img
}

// SavePNG writes the frame to path at native resolution.
func (b *Buffer) SavePNG(path string) error {
	return b.SaveScaledPNG(path, 1)
}

// SaveScaledPNG writes the frame to path, integer-scaled with
// nearest-neighbor so the chunky low-resolution pixels stay sharp.
func (b *Buffer) SaveScaledPNG(path string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("save png: invalid scale %d", scale)
	}

	src := b.Image()
	out := src
	if scale > 1 {
		out = image.NewRGBA(image.Rect(0, 0, b.width*scale, b.height*scale))
		xdraw.NearestNeighbor.Scale(out, out.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("save png: encode %s: %w", path, err)
	}
	return nil
}

// ColorCounts tallies how many pixels carry each distinct color. The
// renderer emits at most four.
func (b *Buffer) ColorCounts() map[raycast.Color]int {
	counts := make(map[raycast.Color]int)
	for _, c := range b.pixels {
		counts[c]++
	}
	return counts
}
