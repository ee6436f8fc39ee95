package xoshiro_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/mrc-ide/mcstate2/xoshiro"
)

// The conversion must produce reals strictly inside (0, 1) over the
// full domain of the source integer type; the boundary inputs are the
// interesting cases.
func TestRealOpenInterval(t *testing.T) {
	u64 := []uint64{0, 1, 1 << 11, math.MaxUint64 / 2, math.MaxUint64 - 1, math.MaxUint64}
	for _, x := range u64 {
		d := xoshiro.Float64FromUint64(x)
		if !(d > 0 && d < 1) {
			t.Errorf("Float64FromUint64(%#x) = %v, outside (0, 1)", x, d)
		}
		f := xoshiro.Float32FromUint64(x)
		if !(f > 0 && f < 1) {
			t.Errorf("Float32FromUint64(%#x) = %v, outside (0, 1)", x, f)
		}
	}
	u32 := []uint32{0, 1, math.MaxUint32 / 2, math.MaxUint32 - 1, math.MaxUint32}
	for _, x := range u32 {
		d := xoshiro.Float64FromUint32(x)
		if !(d > 0 && d < 1) {
			t.Errorf("Float64FromUint32(%#x) = %v, outside (0, 1)", x, d)
		}
		f := xoshiro.Float32FromUint32(x)
		if !(f > 0 && f < 1) {
			t.Errorf("Float32FromUint32(%#x) = %v, outside (0, 1)", x, f)
		}
	}
}

func TestRealFixedFormulas(t *testing.T) {
	// Zero input lands at half a unit of least precision.
	cases := []struct {
		got, want float64
	}{
		{xoshiro.Float64FromUint64(0), 0x1p-54},
		{xoshiro.Float64FromUint32(0), 0x1p-33},
		{float64(xoshiro.Float32FromUint32(0)), 0x1p-33},
		// Midpoint inputs land at one half; the 64-bit path's half-ulp
		// offset is below double resolution there.
		{xoshiro.Float64FromUint64(1 << 63), 0.5},
		{xoshiro.Float64FromUint32(1 << 31), 0.5 + 0x1p-33},
	}
	for i, tc := range cases {
		fmt.Printf("  case %d: got %.20g, want %.20g\n", i, tc.got, tc.want)
		if tc.got != tc.want {
			t.Errorf("case %d: got %v, want %v", i, tc.got, tc.want)
		}
	}
}

func TestRealMonotoneAcrossWidths(t *testing.T) {
	// The float32 path must use the upper 32 bits of a 64-bit draw:
	// low bits do not move the result.
	a := xoshiro.Float32FromUint64(0xdeadbeef00000000)
	b := xoshiro.Float32FromUint64(0xdeadbeefffffffff)
	if a != b {
		t.Errorf("low 32 bits changed the float32 conversion: %v vs %v", a, b)
	}
	if c := xoshiro.Float32FromUint32(0xdeadbeef); c != a {
		t.Errorf("Float32FromUint32 disagrees with the 64-bit path: %v vs %v", c, a)
	}
}

func TestNextFloat64InRange(t *testing.T) {
	for _, alg := range []xoshiro.Algorithm{xoshiro.Xoshiro128Plus, xoshiro.Xoshiro256PlusPlus} {
		s := xoshiro.New(alg, 17)
		for i := 0; i < 10000; i++ {
			v := s.NextFloat64()
			if !(v > 0 && v < 1) {
				t.Fatalf("%s: draw %d = %v, outside (0, 1)", alg, i, v)
			}
		}
	}
}
