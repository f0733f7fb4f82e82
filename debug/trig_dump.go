// Command trig_dump prints the Q9.7 trig tables and walks one ray per
// axis through the builtin level. Handy for eyeballing the fixed-point
// values against the hardware tables.
package main

import (
	"fmt"

	"github.com/rurutoria7/wolfenstein-on-fpga/internal/fixed"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/raycast"
	"github.com/rurutoria7/wolfenstein-on-fpga/internal/world"
)

func main() {
	fmt.Println("Q9.7 trig table spot checks")
	fmt.Println("===========================")
	for _, a := range []fixed.Angle{0, 64, 128, 256, 512, 768, 1000} {
		sin, cos, tan, cot := fixed.Lookup(a)
		fmt.Printf("angle %4d: sin %6d  cos %6d  tan %6d  cot %6d\n", a, sin, cos, tan, cot)
	}

	fmt.Println("\nRay walk from the builtin spawn")
	fmt.Println("===============================")
	level := world.BuiltinLevel()
	walker := raycast.NewWalker(level, 64, 8)
	px, py := level.SpawnWorld(64)

	for _, a := range []fixed.Angle{0, 128, 256, 512} {
		params := raycast.Precalc(uint16(px), uint16(py), a, 64)
		vres := walker.Walk(params.V, uint16(px), uint16(py))
		hres := walker.Walk(params.H, uint16(px), uint16(py))
		fmt.Printf("angle %4d: vertical hit=%-5v distSq=%-10d  horizontal hit=%-5v distSq=%d\n",
			a, vres.Hit, vres.DistSq, hres.Hit, hres.DistSq)
	}

	fmt.Println("\nProjection thresholds (120-row screen)")
	fmt.Println("======================================")
	hc := raycast.NewHeightCalc(120, 64)
	for _, dist := range []uint32{64, 128, 256, 348, 512} {
		span := hc.Compute(raycast.WalkResult{Hit: true, DistSq: dist * dist},
			raycast.WalkResult{DistSq: raycast.MissDistance}, 0, 0)
		fmt.Printf("distance %4d: height %3d rows, band [%d, %d)\n",
			dist, span.LineHeight, span.DrawBegin, span.DrawEnd)
	}
}
