package raycast

import "fmt"

// TileSource is the read-only map lookup the walker consults at each grid
// crossing. Coordinates are bottom-up tile indices; lookups outside the
// grid must read as empty (code 0).
type TileSource interface {
	Tile(tx, ty int) uint8
}

// MissDistance is the squared-distance sentinel reported by a skipped leg,
// chosen so the opposite pass always wins the nearest-hit comparison.
const MissDistance = ^uint32(0)

// WalkResult reports one leg's traversal outcome. DistSq is the squared
// Euclidean distance from the stopping position to the player; squaring
// avoids a square root in the hot path and preserves ordering when
// compared against the other leg's squared distance.
type WalkResult struct {
	Hit    bool
	DistSq uint32

	// Depth counts grid-line crossings, starting at 1 for the initial
	// crossing. It never exceeds the configured maximum.
	Depth int
}

// Walker advances a ray across successive grid lines until a wall is hit
// or the depth cap is reached. One Walker serves both passes; the two legs
// differ only in their parameters.
type Walker struct {
	src      TileSource
	shift    uint
	maxDepth int
}

// NewWalker builds a walker over src. tileWidth must be a power of two and
// maxDepth positive; violations are caller contract errors.
func NewWalker(src TileSource, tileWidth, maxDepth int) *Walker {
	if tileWidth <= 0 || tileWidth&(tileWidth-1) != 0 {
		panic(fmt.Sprintf("raycast: tile width %d is not a power of two", tileWidth))
	}
	if maxDepth <= 0 {
		panic(fmt.Sprintf("raycast: max depth %d must be positive", maxDepth))
	}
	shift := uint(0)
	for 1<<shift != tileWidth {
		shift++
	}
	return &Walker{src: src, shift: shift, maxDepth: maxDepth}
}

// Walk runs one leg to completion. A skipped leg reports an immediate miss
// at the sentinel distance. Otherwise the ray position is converted to a
// tile coordinate and checked against the map at each crossing; the walk
// ends on the first wall or after maxDepth crossings, whichever comes
// first.
func (w *Walker) Walk(leg Leg, playerX, playerY uint16) WalkResult {
	if leg.Skip {
		return WalkResult{DistSq: MissDistance}
	}

	x, y := leg.InitX, leg.InitY
	depth := 1
	for {
		// Arithmetic shift floors negative coordinates, so positions that
		// left the map resolve to out-of-grid tiles and read as empty.
		if w.src.Tile(int(x>>w.shift), int(y>>w.shift)) != 0 {
			return WalkResult{Hit: true, DistSq: distSq(x, y, playerX, playerY), Depth: depth}
		}
		if depth == w.maxDepth {
			return WalkResult{DistSq: distSq(x, y, playerX, playerY), Depth: depth}
		}
		x += leg.StepX
		y += leg.StepY
		depth++
	}
}

// distSq returns the squared distance from (x, y) to the player,
// saturating at the uint32 range. Near-axis rays with clamped slopes can
// run far off the map before the depth cap stops them.
func distSq(x, y int32, playerX, playerY uint16) uint32 {
	dx := int64(x) - int64(playerX)
	dy := int64(y) - int64(playerY)
	d := uint64(dx*dx + dy*dy)
	if d > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(d)
}
