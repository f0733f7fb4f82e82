package world

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseMapCharacter(t *testing.T) {
	cases := []struct {
		char    rune
		cell    uint8
		isStart bool
		wantErr bool
	}{
		{'.', CellEmpty, false, false},
		{'+', CellEmpty, true, false},
		{'#', CellWall, false, false},
		{'1', 1, false, false},
		{'9', 9, false, false},
		{'0', 0, false, true},
		{'x', 0, false, true},
		{' ', 0, false, true},
	}
	for _, tc := range cases {
		cell, isStart, err := parseMapCharacter(tc.char)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseMapCharacter(%q): expected error", tc.char)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseMapCharacter(%q): %v", tc.char, err)
			continue
		}
		if cell != tc.cell || isStart != tc.isStart {
			t.Errorf("parseMapCharacter(%q) = (%d,%v), want (%d,%v)",
				tc.char, cell, isStart, tc.cell, tc.isStart)
		}
	}
}

func TestLoadMapSkipsCommentsAndBlanks(t *testing.T) {
	content := "; header comment\n" +
		"###  \n" + // trailing spaces are trimmed
		"\n" +
		"#+#\n" +
		"; footer\n" +
		"###\n"
	mapPath := filepath.Join(t.TempDir(), "level.map")
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}

	m, err := LoadMap(mapPath)
	if err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}
	if m.Width != 3 || m.Height != 3 {
		t.Errorf("Expected 3x3 map, got %dx%d", m.Width, m.Height)
	}
}

func TestLoadMapSpawnRowIsBottomUp(t *testing.T) {
	// Spawn on the second file line of a 4-row map lands at ty=2.
	mapPath := filepath.Join(t.TempDir(), "level.map")
	content := "####\n#.+#\n#..#\n####\n"
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}

	m, err := LoadMap(mapPath)
	if err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}
	if m.StartX != 2 || m.StartY != 2 {
		t.Errorf("Expected spawn at tile (2,2), got (%d,%d)", m.StartX, m.StartY)
	}
}

func TestLoadMapMissingFile(t *testing.T) {
	if _, err := LoadMap(filepath.Join(t.TempDir(), "nope.map")); err == nil {
		t.Fatalf("Expected error for missing file")
	}
}

func TestMustLoadMapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Expected panic for missing map file")
		}
	}()
	MustLoadMap(filepath.Join(t.TempDir(), "nope.map"))
}
