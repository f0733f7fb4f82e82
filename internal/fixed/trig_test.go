package fixed

import (
	"math"
	"testing"
)

func TestAxisAngleSentinels(t *testing.T) {
	cases := []struct {
		name               string
		angle              Angle
		wantTan, wantCot   int32
	}{
		{"0 degrees", AngleRight, 0, SentinelMax},
		{"90 degrees", AngleUp, SentinelMax, 0},
		{"180 degrees", AngleLeft, 0, SentinelMin},
		{"270 degrees", AngleDown, SentinelMin, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, tan, cot := Lookup(tc.angle)
			if tan != tc.wantTan {
				t.Errorf("tan(%d) = %d, want %d", tc.angle, tan, tc.wantTan)
			}
			if cot != tc.wantCot {
				t.Errorf("cot(%d) = %d, want %d", tc.angle, cot, tc.wantCot)
			}
		})
	}
}

func TestCardinalSinCos(t *testing.T) {
	cases := []struct {
		name             string
		angle            Angle
		wantSin, wantCos int32
	}{
		{"0 degrees", AngleRight, 0, One},
		{"90 degrees", AngleUp, One, 0},
		{"180 degrees", AngleLeft, 0, -One},
		{"270 degrees", AngleDown, -One, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sin, cos, _, _ := Lookup(tc.angle)
			if sin != tc.wantSin || cos != tc.wantCos {
				t.Errorf("Lookup(%d) sin=%d cos=%d, want sin=%d cos=%d",
					tc.angle, sin, cos, tc.wantSin, tc.wantCos)
			}
		})
	}
}

// TestTrigIdentity verifies sin^2 + cos^2 stays within quantization error of
// 1.0 over the whole table.
func TestTrigIdentity(t *testing.T) {
	for i := 0; i < AngleUnits; i++ {
		sin, cos, _, _ := Lookup(Angle(i))
		sum := float64(sin*sin+cos*cos) / float64(One*One)
		if math.Abs(sum-1.0) > 0.02 {
			t.Fatalf("angle %d: sin^2+cos^2 = %.4f, too far from 1", i, sum)
		}
	}
}

// TestTanClamping verifies the near-axis region uses sentinels instead of
// overflowing values: tan magnitudes above 255 must map to the extremes.
func TestTanClamping(t *testing.T) {
	for i := 0; i < AngleUnits; i++ {
		if Angle(i).AxisAligned() {
			continue
		}
		rad := 2 * math.Pi * float64(i) / AngleUnits
		real := math.Tan(rad)
		tan := Tan(Angle(i))
		switch {
		case real > 255.0 && tan != SentinelMax:
			t.Errorf("angle %d: tan=%.1f should clamp to %d, got %d", i, real, SentinelMax, tan)
		case real < -255.0 && tan != SentinelMin:
			t.Errorf("angle %d: tan=%.1f should clamp to %d, got %d", i, real, SentinelMin, tan)
		case real >= -255.0 && real <= 255.0:
			if tan > 255*One || tan < -255*One-One {
				t.Errorf("angle %d: tan %d outside representable range", i, tan)
			}
		}
	}
}

func TestTanCotReciprocal(t *testing.T) {
	// Away from axes and clamp regions, tan*cot should be close to 1.0.
	for i := 32; i < 224; i++ {
		tan, cot := Tan(Angle(i)), Cot(Angle(i))
		product := float64(tan) * float64(cot) / float64(One*One)
		if math.Abs(product-1.0) > 0.05 {
			t.Errorf("angle %d: tan*cot = %.4f, want ~1.0", i, product)
		}
	}
}

func TestAngleWraparound(t *testing.T) {
	cases := []struct {
		name string
		got  Angle
		want Angle
	}{
		{"add wraps forward", Angle(1000).Add(100), 76},
		{"add negative wraps back", Angle(10).Add(-20), 1014},
		{"sub wraps", Angle(0).Sub(1), 1023},
		{"norm negative", Norm(-1), 1023},
		{"norm large", Norm(2048), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %d, want %d", tc.got, tc.want)
			}
		})
	}
}

func TestFixedMul(t *testing.T) {
	if got := Mul(One, One); got != One {
		t.Errorf("1.0 * 1.0 = %d, want %d", got, One)
	}
	if got := Mul(One/2, One/2); got != One/4 {
		t.Errorf("0.5 * 0.5 = %d, want %d", got, One/4)
	}
	if got := MulInt(One*2, 64); got != 128 {
		t.Errorf("2.0 * 64 = %d, want 128", got)
	}
	// Arithmetic shift truncates toward negative infinity like the hardware.
	if got := MulInt(-One/2, 3); got != -2 {
		t.Errorf("-0.5 * 3 = %d, want -2", got)
	}
}
