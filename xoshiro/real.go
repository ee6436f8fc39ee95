package xoshiro

// Bias-free conversion from raw integers to reals strictly inside
// (0, 1): take the high-order mantissa-width bits, scale, and add half
// a unit of least precision so the result can be neither 0 nor 1. See
// https://mumble.net/~campbell/tmp/random_real.c and
// https://doornik.com/research/randomdouble.pdf for background.

const (
	twoPow32Inv       = 2.3283064e-10
	twoPow32InvDouble = 2.3283064365386963e-10
	twoPow53InvDouble = 1.1102230246251565e-16

	// Largest values below 1. The top conversion bin lands on the
	// exact midpoint between these and 1.0, which round-to-even would
	// carry to 1.0; it is rounded down instead to keep the open
	// interval.
	maxFloat64Below1 = 1 - 0x1p-53
	maxFloat32Below1 = 1 - 0x1p-24
)

// Float64FromUint64 converts a full-width draw to a float64 using the
// top 53 bits.
func Float64FromUint64(x uint64) float64 {
	r := float64(x>>11)*twoPow53InvDouble + twoPow53InvDouble/2
	if r >= 1 {
		return maxFloat64Below1
	}
	return r
}

// Float64FromUint32 converts a 32-bit draw to a float64.
func Float64FromUint32(x uint32) float64 {
	return float64(x)*twoPow32InvDouble + twoPow32InvDouble/2
}

// Float32FromUint64 converts a full-width draw to a float32 using the
// upper 32 bits.
func Float32FromUint64(x uint64) float32 {
	return Float32FromUint32(uint32(x >> 32))
}

// Float32FromUint32 converts a 32-bit draw to a float32.
func Float32FromUint32(x uint32) float32 {
	r := float32(x)*twoPow32Inv + twoPow32Inv/2
	if r >= 1 {
		return maxFloat32Below1
	}
	return r
}
