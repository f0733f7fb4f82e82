package world

import (
	"os"
	"testing"
)

func TestBuiltinLevel(t *testing.T) {
	m := BuiltinLevel()

	if m.Width != 8 || m.Height != 8 {
		t.Fatalf("Expected 8x8 builtin level, got %dx%d", m.Width, m.Height)
	}
	if m.StartX != 1 || m.StartY != 1 {
		t.Errorf("Expected spawn at tile (1,1), got (%d,%d)", m.StartX, m.StartY)
	}

	// Border tiles are walls, interior is open.
	for i := 0; i < 8; i++ {
		if m.Tile(i, 0) == CellEmpty || m.Tile(i, 7) == CellEmpty {
			t.Errorf("Expected wall on row border at x=%d", i)
		}
		if m.Tile(0, i) == CellEmpty || m.Tile(7, i) == CellEmpty {
			t.Errorf("Expected wall on column border at y=%d", i)
		}
	}
	for ty := 1; ty < 7; ty++ {
		for tx := 1; tx < 7; tx++ {
			if m.Tile(tx, ty) != CellEmpty {
				t.Errorf("Expected empty interior at (%d,%d)", tx, ty)
			}
		}
	}
}

func TestBottomUpRowConvention(t *testing.T) {
	// Wall only on the top file row; bottom-up lookup must see it at the
	// highest ty.
	m, err := ParseMap([]string{
		"###",
		"...",
		"...",
	})
	if err != nil {
		t.Fatalf("ParseMap failed: %v", err)
	}

	if m.Tile(0, 2) != CellWall {
		t.Errorf("Expected top file row at ty=2 to be wall")
	}
	if m.Tile(0, 0) != CellWall {
		// ty=0 is the bottom file row, which is empty.
		if m.Tile(0, 0) != CellEmpty {
			t.Errorf("Expected bottom row empty, got %d", m.Tile(0, 0))
		}
	} else {
		t.Errorf("Expected ty=0 (bottom row) to be empty")
	}
}

func TestTileOutOfBoundsReadsEmpty(t *testing.T) {
	m := BuiltinLevel()
	cases := []struct{ tx, ty int }{
		{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100},
	}
	for _, tc := range cases {
		if got := m.Tile(tc.tx, tc.ty); got != CellEmpty {
			t.Errorf("Tile(%d,%d) = %d, want empty", tc.tx, tc.ty, got)
		}
	}
}

func TestSolidAtWorld(t *testing.T) {
	m := BuiltinLevel()
	tileSize := 64

	if !m.SolidAtWorld(10, 10, tileSize) {
		t.Errorf("Expected (10,10) inside the border wall to be solid")
	}
	if m.SolidAtWorld(100, 100, tileSize) {
		t.Errorf("Expected (100,100) to be open floor")
	}
	if !m.SolidAtWorld(-5, 100, tileSize) {
		t.Errorf("Expected negative world coordinates to read solid")
	}
}

func TestSpawnWorld(t *testing.T) {
	m := BuiltinLevel()
	x, y := m.SpawnWorld(64)
	if x != 96 || y != 96 {
		t.Errorf("Expected spawn center (96,96), got (%d,%d)", x, y)
	}

	noSpawn, err := ParseMap([]string{"..", ".."})
	if err != nil {
		t.Fatalf("ParseMap failed: %v", err)
	}
	x, y = noSpawn.SpawnWorld(64)
	if x != 96 || y != 96 {
		t.Errorf("Expected map-center fallback (96,96), got (%d,%d)", x, y)
	}
}

func TestLoadMapFromFile(t *testing.T) {
	content := `; test level
####
#+.#
####
`
	tmpFile, err := os.CreateTemp("", "test_level_*.map")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write map: %v", err)
	}
	tmpFile.Close()

	m, err := LoadMap(tmpFile.Name())
	if err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}
	if m.Width != 4 || m.Height != 3 {
		t.Errorf("Expected 4x3 map, got %dx%d", m.Width, m.Height)
	}
	if m.StartX != 1 || m.StartY != 1 {
		t.Errorf("Expected spawn at (1,1), got (%d,%d)", m.StartX, m.StartY)
	}
}

func TestParseMapErrors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"no rows", nil},
		{"ragged rows", []string{"###", "##"}},
		{"unknown character", []string{"#?#"}},
		{"duplicate spawn", []string{"++"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseMap(tc.lines); err == nil {
				t.Errorf("Expected parse error")
			}
		})
	}
}

func TestWallVariantCodes(t *testing.T) {
	m, err := ParseMap([]string{"123"})
	if err != nil {
		t.Fatalf("ParseMap failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if got := m.Tile(i, 0); got != uint8(i+1) {
			t.Errorf("Tile(%d,0) = %d, want %d", i, got, i+1)
		}
	}
}
