// Package fixed provides the mod-1024 angle type, Q9.7 fixed-point helpers,
// and the trigonometric lookup table used by the raycasting pipeline.
//
// The table reproduces the canonical 1024-entry block-RAM image: sine and
// cosine are rounded to 7 fractional bits, tangent and cotangent are clamped
// at magnitude 255 and replaced by signed sentinels at the axis-aligned
// angles where they diverge.
package fixed

import "math"

// Sentinel magnitudes standing in for +inf / -inf in the tan and cot
// columns. They are the int16 extremes so any comparison against a real
// clamped value still orders correctly.
const (
	SentinelMax int32 = 32767
	SentinelMin int32 = -32768
)

// clampMagnitude is the largest real value representable before the table
// switches to the sentinels.
const clampMagnitude = 255.0

var (
	sinTable [AngleUnits]int16
	cosTable [AngleUnits]int16
	tanTable [AngleUnits]int16
	cotTable [AngleUnits]int16
)

func init() {
	scale := 2 * math.Pi / AngleUnits
	for i := 0; i < AngleUnits; i++ {
		rad := float64(i) * scale
		sinTable[i] = quantize(math.Sin(rad))
		cosTable[i] = quantize(math.Cos(rad))
		tanTable[i], cotTable[i] = tanCot(i, rad)
	}
}

// quantize converts a real value to Q9.7, saturating at the int16 range.
func quantize(v float64) int16 {
	fixed := int64(math.Round(v * One))
	if fixed > int64(SentinelMax) {
		return int16(SentinelMax)
	}
	if fixed < int64(SentinelMin) {
		return int16(SentinelMin)
	}
	return int16(fixed)
}

// tanCot computes the tan and cot entries for angle index i, applying the
// axis special cases and the magnitude clamp.
func tanCot(i int, rad float64) (tan, cot int16) {
	switch i {
	case 256: // 90 degrees: tan diverges to +inf
		return int16(SentinelMax), 0
	case 768: // 270 degrees: tan diverges to -inf
		return int16(SentinelMin), 0
	case 0: // cot diverges to +inf
		return 0, int16(SentinelMax)
	case 512: // cot diverges to -inf
		return 0, int16(SentinelMin)
	}

	t := math.Tan(rad)
	switch {
	case t > clampMagnitude:
		tan = int16(SentinelMax)
	case t < -clampMagnitude:
		tan = int16(SentinelMin)
	default:
		tan = quantize(t)
	}

	if math.Abs(t) < 1e-6 {
		if math.Cos(rad) > 0 {
			cot = int16(SentinelMax)
		} else {
			cot = int16(SentinelMin)
		}
		return tan, cot
	}
	c := 1.0 / t
	switch {
	case c > clampMagnitude:
		cot = int16(SentinelMax)
	case c < -clampMagnitude:
		cot = int16(SentinelMin)
	default:
		cot = quantize(c)
	}
	return tan, cot
}

// Lookup returns the four Q9.7 trig values for the given angle. It is a
// total, deterministic function over the angle domain.
func Lookup(a Angle) (sin, cos, tan, cot int32) {
	i := a & angleMask
	return int32(sinTable[i]), int32(cosTable[i]), int32(tanTable[i]), int32(cotTable[i])
}

// Sin returns the Q9.7 sine of a.
func Sin(a Angle) int32 { return int32(sinTable[a&angleMask]) }

// Cos returns the Q9.7 cosine of a.
func Cos(a Angle) int32 { return int32(cosTable[a&angleMask]) }

// Tan returns the Q9.7 tangent of a, sentinel-valued at 90 and 270 degrees.
func Tan(a Angle) int32 { return int32(tanTable[a&angleMask]) }

// Cot returns the Q9.7 cotangent of a, sentinel-valued at 0 and 180 degrees.
func Cot(a Angle) int32 { return int32(cotTable[a&angleMask]) }
