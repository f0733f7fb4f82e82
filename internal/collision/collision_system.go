package collision

import (
	"fmt"
	"math/bits"
)

// TileChecker reports which tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
}

// System resolves movement against the tile grid. Positions and box
// extents are integer world units; tile lookup is a shift, so the tile
// width must be a power of two.
type System struct {
	tiles TileChecker
	shift uint
}

// NewSystem creates a collision system over the given tile checker
func NewSystem(tiles TileChecker, tileWidth int) *System {
	if tileWidth <= 0 || bits.OnesCount(uint(tileWidth)) != 1 {
		panic(fmt.Sprintf("collision: tile width %d is not a power of two", tileWidth))
	}
	return &System{
		tiles: tiles,
		shift: uint(bits.TrailingZeros(uint(tileWidth))),
	}
}

// CanMoveTo checks whether the box overlaps any blocking tile
func (s *System) CanMoveTo(box BoundingBox) bool {
	minX, minY, maxX, maxY := box.GetBounds()
	if minX < 0 || minY < 0 {
		return false
	}

	for tileY := minY >> s.shift; tileY <= maxY>>s.shift; tileY++ {
		for tileX := minX >> s.shift; tileX <= maxX>>s.shift; tileX++ {
			if s.tiles.IsTileBlocking(tileX, tileY) {
				return false
			}
		}
	}
	return true
}

// SlideMove attempts to move the box by (dx, dy). A blocked diagonal move
// degrades to its free axis component so the box slides along walls
// instead of sticking to them. Returns the resolved center position.
func (s *System) SlideMove(box BoundingBox, dx, dy int) (int, int) {
	if s.CanMoveTo(box.MoveTo(box.X+dx, box.Y+dy)) {
		return box.X + dx, box.Y + dy
	}
	if dx != 0 && s.CanMoveTo(box.MoveTo(box.X+dx, box.Y)) {
		return box.X + dx, box.Y
	}
	if dy != 0 && s.CanMoveTo(box.MoveTo(box.X, box.Y+dy)) {
		return box.X, box.Y + dy
	}
	return box.X, box.Y
}
