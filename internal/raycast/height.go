package raycast

import (
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/fixed"
)

// ColumnSpan describes one column's wall slice: its height in rows, the
// half-open row band [DrawBegin, DrawEnd) it occupies, and which surface
// orientation won the hit selection (used only for color).
type ColumnSpan struct {
	LineHeight        int
	DrawBegin         int
	DrawEnd           int
	HorizontalSurface bool

	// WallVisible is false when neither walker hit; the column is then a
	// bare ceiling/floor split with an empty wall band.
	WallVisible bool
}

// HeightCalc turns the two walkers' outputs into a wall slice. The
// squared-distance thresholds for every candidate height are precomputed
// once: threshold(h) = (screenHeight * tileWidth / h)^2, from
// similar-triangles projection, non-increasing in h.
type HeightCalc struct {
	screenHeight int
	thresholds   []uint32 // thresholds[h-1] is threshold(h)
}

// NewHeightCalc precomputes the projection thresholds for a screen of the
// given height over tiles of the given width.
func NewHeightCalc(screenHeight, tileWidth int) *HeightCalc {
	hc := &HeightCalc{
		screenHeight: screenHeight,
		thresholds:   make([]uint32, screenHeight),
	}
	for h := 1; h <= screenHeight; h++ {
		d := screenHeight * tileWidth / h
		hc.thresholds[h-1] = uint32(d) * uint32(d)
	}
	return hc
}

// Compute selects the nearer of the two hits, applies perspective
// correction for the ray's angular offset from the view direction, and
// derives the wall slice. Ties between equal hit distances resolve toward
// the vertical-edge pass.
//
// The correction multiplies the chosen squared distance by the squared
// cosine of (rayAngle - viewAngle): off-center rays travel physically
// farther to reach a wall at a fixed perpendicular distance, which would
// otherwise bow flat walls into curves.
func (hc *HeightCalc) Compute(vres, hres WalkResult, rayAngle, viewAngle fixed.Angle) ColumnSpan {
	center := hc.screenHeight / 2
	if !vres.Hit && !hres.Hit {
		return ColumnSpan{DrawBegin: center, DrawEnd: center}
	}

	distSq := vres.DistSq
	horizontal := false
	if hres.Hit && (!vres.Hit || hres.DistSq < vres.DistSq) {
		distSq = hres.DistSq
		horizontal = true
	}

	cos := fixed.Cos(rayAngle.Sub(viewAngle))
	cosSq := fixed.Mul(cos, cos)
	corrected := uint32((uint64(distSq) * uint64(cosSq)) >> fixed.FracBits)

	h := hc.lineHeight(corrected)
	return ColumnSpan{
		LineHeight:        h,
		DrawBegin:         center - h/2,
		DrawEnd:           center + h/2,
		HorizontalSurface: horizontal,
		WallVisible:       true,
	}
}

// lineHeight scans from the tallest candidate down; the first height whose
// threshold covers the corrected distance is the largest qualifying one.
// A corrected distance of zero yields the full screen height. Distances
// beyond every threshold clamp to 1.
func (hc *HeightCalc) lineHeight(corrected uint32) int {
	for h := hc.screenHeight; h >= 1; h-- {
		if hc.thresholds[h-1] >= corrected {
			return h
		}
	}
	return 1
}
