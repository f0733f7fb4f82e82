package fixed

// Angle resolution and fixed-point layout. These are the values the
// canonical trig table is defined against; Lookup conformance is
// bit-for-bit, so they are compile-time constants rather than config.
const (
	AngleUnits = 1024             // angle units per full turn
	angleMask  = AngleUnits - 1   // wraparound mask
	FracBits   = 7                // fractional bits of the Q9.7 format
	One        = 1 << FracBits    // 1.0 in Q9.7
)

// The four axis-aligned headings.
const (
	AngleRight Angle = 0
	AngleUp    Angle = 256
	AngleLeft  Angle = 512
	AngleDown  Angle = 768
)

// Angle is a heading in 1/1024ths of a full turn, counter-clockwise from
// the +X axis. All arithmetic wraps modulo 1024.
type Angle uint16

// Norm returns an arbitrary integer angle wrapped into [0, 1024).
func Norm(v int) Angle {
	return Angle(v & angleMask)
}

// Add returns a offset by d angle units, wrapping.
func (a Angle) Add(d int) Angle {
	return Norm(int(a) + d)
}

// Sub returns the wrapped difference a - b.
func (a Angle) Sub(b Angle) Angle {
	return Norm(int(a) - int(b))
}

// AxisAligned reports whether a is one of the four axis headings.
func (a Angle) AxisAligned() bool {
	return a&(AngleUnits/4-1) == 0
}

// Mul multiplies two Q9.7 values, rescaling back to Q9.7. The shift is
// arithmetic, matching the hardware's truncation toward negative infinity.
func Mul(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> FracBits)
}

// MulInt multiplies a Q9.7 value by a plain integer and returns the
// integer-scale result (the right shift drops the fractional bits).
func MulInt(q, n int32) int32 {
	return int32((int64(q) * int64(n)) >> FracBits)
}
