// Package xoshiro implements the xoshiro/xoroshiro family of scrambled
// linear pseudorandom number generators by David Blackman and Sebastiano
// Vigna (https://prng.di.unimi.it), together with the splitmix64 seeding
// procedure, jump-based stream partitioning and bias-free conversion of
// raw draws to reals in (0, 1).
//
// Output is bit-for-bit identical to the published reference
// implementations; downstream consumers depend on reproducing the same
// sequences across platforms and languages.
package xoshiro

import "fmt"

// Scrambler is the output-combination function producing each emitted
// integer from the raw state words.
type Scrambler int

const (
	// Plus sums two designated state words.
	Plus Scrambler = iota
	// PlusPlus rotates the sum of two words and adds one back.
	PlusPlus
	// StarStar multiplies, rotates, then multiplies again.
	StarStar
)

// Algorithm identifies one supported (width, state size, scrambler)
// generator variant. The set is closed: every variant the module
// supports is enumerated here.
type Algorithm int

const (
	Xoshiro128Plus Algorithm = iota
	Xoshiro128PlusPlus
	Xoshiro128StarStar
	Xoroshiro128Plus
	Xoroshiro128PlusPlus
	Xoroshiro128StarStar
	Xoshiro256Plus
	Xoshiro256PlusPlus
	Xoshiro256StarStar
	Xoshiro512Plus
	Xoshiro512PlusPlus
	Xoshiro512StarStar

	nAlgorithms
)

// Default is the generator used when the caller expresses no
// preference.
const Default = Xoshiro256PlusPlus

// String returns the canonical algorithm name, e.g.
// "xoshiro256plusplus". Exported state must be reattached under the
// same name.
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("invalid algorithm (%d)", int(a))
	}
	return variants[a].name
}

// Size returns the number of state integers per stream.
func (a Algorithm) Size() int { return variants[a].size }

// WordBits returns the state integer width in bits (32 or 64).
func (a Algorithm) WordBits() int { return variants[a].bits }

// WordBytes returns the state integer width in bytes.
func (a Algorithm) WordBytes() int { return variants[a].bits / 8 }

// BlockBytes returns the serialized size of one stream's state.
func (a Algorithm) BlockBytes() int { return a.Size() * a.WordBytes() }

// Scrambler returns the variant's output scrambler.
func (a Algorithm) Scrambler() Scrambler { return variants[a].scrambler }

func (a Algorithm) valid() bool { return a >= 0 && a < nAlgorithms }

// ParseAlgorithm maps a canonical name back to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a := Algorithm(0); a < nAlgorithms; a++ {
		if variants[a].name == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown generator algorithm %q", name)
}

// Algorithms returns every supported variant, in enumeration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, nAlgorithms)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}
