package framebuffer

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/raycast"
)

func fillFrame(b *Buffer, c raycast.Color) {
	for col := 0; col < b.Width(); col++ {
		for row := 0; row < b.Height(); row++ {
			b.PutPixel(col, row, c)
		}
	}
	b.FrameComplete()
}

func TestBufferStoresStream(t *testing.T) {
	b := New(4, 3)
	for col := 0; col < 4; col++ {
		for row := 0; row < 3; row++ {
			b.PutPixel(col, row, raycast.Color(col*10+row))
		}
	}
	b.FrameComplete()

	if b.Frames() != 1 {
		t.Errorf("frames = %d, want 1", b.Frames())
	}
	for col := 0; col < 4; col++ {
		for row := 0; row < 3; row++ {
			if got := b.At(col, row); got != raycast.Color(col*10+row) {
				t.Errorf("At(%d,%d) = %d, want %d", col, row, got, col*10+row)
			}
		}
	}
}

func TestBufferRejectsOutOfOrderPixels(t *testing.T) {
	cases := []struct {
		name     string
		col, row int
	}{
		{"skipped row", 0, 1},
		{"wrong column", 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(4, 3)
			b.PutPixel(0, 0, 0)
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			b.PutPixel(tc.col, tc.row, 0)
		})
	}
}

func TestBufferRejectsEarlyFrameComplete(t *testing.T) {
	b := New(4, 3)
	b.PutPixel(0, 0, 0)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on partial frame")
		}
	}()
	b.FrameComplete()
}

func TestBufferConsecutiveFrames(t *testing.T) {
	b := New(2, 2)
	fillFrame(b, 0x111)
	fillFrame(b, 0x222)

	if b.Frames() != 2 {
		t.Errorf("frames = %d, want 2", b.Frames())
	}
	if b.At(1, 1) != 0x222 {
		t.Errorf("second frame did not overwrite the first")
	}
}

func TestBufferRGBAConversion(t *testing.T) {
	b := New(2, 2)
	b.PutPixel(0, 0, 0xC22)
	b.PutPixel(0, 1, 0x000)
	b.PutPixel(1, 0, 0xFFF)
	b.PutPixel(1, 1, 0x39F)
	b.FrameComplete()

	rgba := b.RGBA()
	if len(rgba) != 2*2*4 {
		t.Fatalf("rgba length = %d, want 16", len(rgba))
	}

	// Row-major: (0,0) then (1,0) then (0,1) then (1,1).
	checks := []struct {
		idx     int
		r, g, bl byte
	}{
		{0, 0xCC, 0x22, 0x22},
		{4, 0xFF, 0xFF, 0xFF},
		{8, 0x00, 0x00, 0x00},
		{12, 0x33, 0x99, 0xFF},
	}
	for _, c := range checks {
		if rgba[c.idx] != c.r || rgba[c.idx+1] != c.g || rgba[c.idx+2] != c.bl || rgba[c.idx+3] != 0xFF {
			t.Errorf("rgba[%d:] = % x, want %02x %02x %02x ff",
				c.idx, rgba[c.idx:c.idx+4], c.r, c.g, c.bl)
		}
	}
}

func TestBufferBlitColumn(t *testing.T) {
	b := New(3, 2)
	for col := 0; col < 3; col++ {
		b.BlitColumn(col, []raycast.Color{raycast.Color(col), raycast.Color(col + 10)})
	}
	b.EndBlitFrame()

	if b.At(2, 1) != 12 {
		t.Errorf("At(2,1) = %d, want 12", b.At(2, 1))
	}
	if b.Frames() != 1 {
		t.Errorf("frames = %d, want 1", b.Frames())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on short column")
		}
	}()
	b.BlitColumn(0, []raycast.Color{1})
}

func TestSaveScaledPNG(t *testing.T) {
	b := New(4, 3)
	fillFrame(b, 0xC22)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := b.SaveScaledPNG(path, 3); err != nil {
		t.Fatalf("SaveScaledPNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 12 || bounds.Dy() != 9 {
		t.Errorf("scaled size = %dx%d, want 12x9", bounds.Dx(), bounds.Dy())
	}
	r, g, bl, _ := img.At(6, 4).RGBA()
	if uint8(r>>8) != 0xCC || uint8(g>>8) != 0x22 || uint8(bl>>8) != 0x22 {
		t.Errorf("scaled pixel = %02x %02x %02x, want cc 22 22", r>>8, g>>8, bl>>8)
	}

	if err := b.SaveScaledPNG(path, 0); err == nil {
		t.Errorf("expected error for scale 0")
	}
}

func TestColorCounts(t *testing.T) {
	b := New(2, 2)
	b.PutPixel(0, 0, 0xC22)
	b.PutPixel(0, 1, 0xC22)
	b.PutPixel(1, 0, 0x554)
	b.PutPixel(1, 1, 0x39F)
	b.FrameComplete()

	counts := b.ColorCounts()
	if len(counts) != 3 {
		t.Fatalf("distinct colors = %d, want 3", len(counts))
	}
	if counts[0xC22] != 2 || counts[0x554] != 1 || counts[0x39F] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
