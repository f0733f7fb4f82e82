// Package raycast implements the fixed-point raycasting render pipeline:
// per-column ray precalculation from the Q9.7 trig table, a twice-run DDA
// grid walker, perspective-corrected wall height derivation, and a column
// renderer driven by a multi-state sequencer.
package raycast

import (
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/fixed"
)

// Leg holds one pass's initial grid-line crossing and per-step increment.
// The vertical leg advances across vertical grid lines (x = n*tile), the
// horizontal leg across horizontal grid lines (y = n*tile).
type Leg struct {
	InitX, InitY int32
	StepX, StepY int32

	// Skip marks a leg that cannot produce a meaningful crossing because
	// the ray runs parallel to this leg's grid lines.
	Skip bool
}

// RayParams is the output of ray precalculation: both legs' crossings.
type RayParams struct {
	V, H Leg
}

// Precalc computes the initial grid-line crossing points and step vectors
// for both walker passes. tileWidth must be a power of two.
//
// The vertical-edge crossing X is the next tile boundary in the direction
// of travel; when moving toward -X it is pulled one unit inward so the
// position lands just inside the adjacent tile. The crossing Y follows the
// ray slope: playerY + tan * dx, evaluated in Q9.7 and shifted back to
// integer scale. The horizontal-edge pass is the mirror construction with
// cotangent.
func Precalc(playerX, playerY uint16, rayAngle fixed.Angle, tileWidth int) RayParams {
	px, py := int32(playerX), int32(playerY)
	tile := int32(tileWidth)
	mask := tile - 1

	_, _, tan, cot := fixed.Lookup(rayAngle)
	var p RayParams

	// Vertical grid lines cannot be crossed by a ray pointing straight up
	// or down; division by zero is avoided structurally via the skip flag.
	if rayAngle == fixed.AngleUp || rayAngle == fixed.AngleDown {
		p.V.Skip = true
	} else {
		right := rayAngle < fixed.AngleUp || rayAngle > fixed.AngleDown
		if right {
			p.V.InitX = (px &^ mask) + tile
			p.V.StepX = tile
		} else {
			p.V.InitX = (px &^ mask) - 1
			p.V.StepX = -tile
		}
		dx := p.V.InitX - px
		p.V.InitY = py + fixed.MulInt(tan, dx)
		p.V.StepY = fixed.MulInt(tan, p.V.StepX)
	}

	if rayAngle == fixed.AngleRight || rayAngle == fixed.AngleLeft {
		p.H.Skip = true
	} else {
		up := rayAngle > fixed.AngleRight && rayAngle < fixed.AngleLeft
		if up {
			p.H.InitY = (py &^ mask) + tile
			p.H.StepY = tile
		} else {
			p.H.InitY = (py &^ mask) - 1
			p.H.StepY = -tile
		}
		dy := p.H.InitY - py
		p.H.InitX = px + fixed.MulInt(cot, dy)
		p.H.StepX = fixed.MulInt(cot, p.H.StepY)
	}

	return p
}
