// Package world owns the tile map: an N x N grid of cell codes, loaded from
// a text file or built in. Cell code 0 is empty space; any non-zero code is
// a wall. The grid is read-only during rendering and exposed to the
// pipeline only through point lookups by tile coordinate.
package world

// Well-known cell codes. Codes 1-9 are all solid; the distinction only
// matters to tooling that wants to label wall variants.
const (
	CellEmpty uint8 = 0
	CellWall  uint8 = 1
)

// Map is a rectangular grid of cell codes with a bottom-up row convention:
// tile (0, 0) is the bottom-left corner of the world. Rows are stored as
// loaded (top line first) and flipped on lookup.
type Map struct {
	Width  int
	Height int

	// Spawn tile in bottom-up tile coordinates, or (-1, -1) when the map
	// declares none.
	StartX int
	StartY int

	rows [][]uint8
}

// NewMap builds a map from top-down rows, as they appear in a map file.
// All rows must have the same width.
func NewMap(rows [][]uint8) *Map {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	return &Map{
		Width:  width,
		Height: height,
		StartX: -1,
		StartY: -1,
		rows:   rows,
	}
}

// Tile returns the cell code at bottom-up tile coordinates (tx, ty).
// Lookups outside the grid read as empty space; the walker's depth cap
// bounds how far a ray can wander off the map.
func (m *Map) Tile(tx, ty int) uint8 {
	if tx < 0 || tx >= m.Width || ty < 0 || ty >= m.Height {
		return CellEmpty
	}
	return m.rows[m.Height-1-ty][tx]
}

// Solid reports whether the tile at bottom-up coordinates (tx, ty) blocks
// movement.
func (m *Map) Solid(tx, ty int) bool {
	return m.Tile(tx, ty) != CellEmpty
}

// SolidAtWorld reports whether the world-unit position (x, y) falls inside
// a wall tile. tileSize must match the renderer's configuration.
func (m *Map) SolidAtWorld(x, y, tileSize int) bool {
	if x < 0 || y < 0 {
		return true
	}
	return m.Solid(x/tileSize, y/tileSize)
}

// SpawnWorld returns the world-unit center of the spawn tile, or the center
// of the map when the file declared no spawn marker.
func (m *Map) SpawnWorld(tileSize int) (x, y int) {
	tx, ty := m.StartX, m.StartY
	if tx < 0 || ty < 0 {
		tx, ty = m.Width/2, m.Height/2
	}
	return tx*tileSize + tileSize/2, ty*tileSize + tileSize/2
}

// BuiltinLevel returns the canonical 8x8 level: a walled border around open
// floor, spawn one tile in from the bottom-left corner.
func BuiltinLevel() *Map {
	m, err := ParseMap([]string{
		"########",
		"#......#",
		"#......#",
		"#......#",
		"#......#",
		"#......#",
		"#+.....#",
		"########",
	})
	if err != nil {
		panic("builtin level failed to parse: " + err.Error())
	}
	return m
}
