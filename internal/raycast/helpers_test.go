package raycast

// Shared fixtures for the pipeline tests.

// gridSource is a tiny in-memory tile map. Rows are given bottom-up, so
// rows[0] is tile row ty=0.
type gridSource struct {
	rows [][]uint8
}

func (g *gridSource) Tile(tx, ty int) uint8 {
	if ty < 0 || ty >= len(g.rows) || tx < 0 || tx >= len(g.rows[ty]) {
		return 0
	}
	return g.rows[ty][tx]
}

// emptySource is a map with no walls anywhere.
type emptySource struct{}

func (emptySource) Tile(tx, ty int) uint8 { return 0 }

// borderedLevel returns the canonical 8x8 layout: solid border, open
// interior.
func borderedLevel() *gridSource {
	rows := make([][]uint8, 8)
	for ty := range rows {
		rows[ty] = make([]uint8, 8)
		for tx := range rows[ty] {
			if tx == 0 || tx == 7 || ty == 0 || ty == 7 {
				rows[ty][tx] = 1
			}
		}
	}
	return &gridSource{rows: rows}
}

type pixelEvent struct {
	col, row int
	c        Color
}

// recordingSink captures the pixel stream and frame-complete pulses.
type recordingSink struct {
	pixels []pixelEvent
	frames int
}

func (s *recordingSink) PutPixel(col, row int, c Color) {
	s.pixels = append(s.pixels, pixelEvent{col, row, c})
}

func (s *recordingSink) FrameComplete() {
	s.frames++
}

var testPalette = Palette{
	Ceiling:        0x39F,
	Floor:          0x554,
	WallVertical:   0xC22,
	WallHorizontal: 0x811,
}

func testSettings() Settings {
	return Settings{
		ScreenWidth:  160,
		ScreenHeight: 120,
		TileWidth:    64,
		MaxDepth:     8,
		FOV:          160,
		Palette:      testPalette,
	}
}
