package xoshiro

import (
	"encoding/binary"
	"fmt"
)

// SeedFormatError reports seed material whose length is not a positive
// exact multiple of the amount needed for one stream.
type SeedFormatError struct {
	// Len is the offending length, in the units of Unit.
	Len int
	// Modulus is the required multiple.
	Modulus int
	// Unit is "bytes" or "words".
	Unit string
}

func (e *SeedFormatError) Error() string {
	return fmt.Sprintf("expected seed length to be a positive multiple of %d %s, got %d",
		e.Modulus, e.Unit, e.Len)
}

// splitmix64 is the 64-bit mixing function recommended for seeding the
// xoshiro generators (https://prng.di.unimi.it/splitmix64.c).
func splitmix64(x uint64) uint64 {
	z := x + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// SeedData deterministically expands a scalar seed into the state
// words for one stream of alg. Each splitmix64 chain value fills one
// 64-bit word, or two 32-bit words low half first. The result is never
// all zero, where the recurrence is degenerate.
func SeedData(alg Algorithm, seed uint64) []uint64 {
	n := alg.Size()
	out := make([]uint64, n)
	z := seed
	if alg.WordBits() == 32 {
		for i := 0; i < n; i += 2 {
			z = splitmix64(z)
			out[i] = z & 0xffffffff
			out[i+1] = z >> 32
		}
	} else {
		for i := range out {
			z = splitmix64(z)
			out[i] = z
		}
	}
	if allZero(out) {
		// Not reachable for any seed found so far; the guard keeps
		// the non-degeneracy invariant unconditional.
		out[0] = 0x9e3779b97f4a7c15 & wordMask(alg)
	}
	return out
}

func allZero(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

func wordMask(alg Algorithm) uint64 {
	if alg.WordBits() == 32 {
		return 0xffffffff
	}
	return ^uint64(0)
}

// New returns a fresh stream for alg seeded from a scalar. Two calls
// with the same scalar always produce the same state.
func New(alg Algorithm, seed uint64) *State {
	return &State{alg: alg, word: SeedData(alg, seed)}
}

// SeedStreams expands a scalar seed into nStreams independent streams:
// stream 0 comes from SeedData and each further stream is a jumped
// copy of the previous one, so the partition is non-overlapping rather
// than merely low-collision.
func SeedStreams(alg Algorithm, nStreams int, seed uint64) []*State {
	states, _ := Seed(alg, nStreams, SeedData(alg, seed))
	return states
}

// Seed builds nStreams streams from explicit seed material. The
// material length must be a positive exact multiple of alg.Size();
// leading streams take successive blocks of material and any remainder
// is derived by jumping the previous stream. Supplying more blocks
// than streams is an error.
func Seed(alg Algorithm, nStreams int, material []uint64) ([]*State, error) {
	size := alg.Size()
	if len(material) == 0 || len(material)%size != 0 {
		return nil, &SeedFormatError{Len: len(material), Modulus: size, Unit: "words"}
	}
	blocks := len(material) / size
	if nStreams < 1 {
		return nil, fmt.Errorf("need at least 1 stream, got %d", nStreams)
	}
	if blocks > nStreams {
		return nil, fmt.Errorf("seed material provides %d streams but only %d requested", blocks, nStreams)
	}
	mask := wordMask(alg)
	states := make([]*State, nStreams)
	for i := range states {
		if i < blocks {
			word := make([]uint64, size)
			for j := range word {
				word[j] = material[i*size+j] & mask
			}
			if allZero(word) {
				// The recurrence is degenerate at the all-zero state.
				return nil, fmt.Errorf("seed material for stream %d is all zero", i)
			}
			states[i] = &State{alg: alg, word: word}
			continue
		}
		states[i] = states[i-1].Clone()
		states[i].Jump()
	}
	return states, nil
}

// SeedFromBytes reinterprets a raw buffer as packed little-endian
// state integers. The length must be a positive exact multiple of
// alg.BlockBytes(); the stream count is the number of whole blocks.
func SeedFromBytes(alg Algorithm, data []byte) ([]*State, error) {
	block := alg.BlockBytes()
	if len(data) == 0 || len(data)%block != 0 {
		return nil, &SeedFormatError{Len: len(data), Modulus: block, Unit: "bytes"}
	}
	material := make([]uint64, len(data)/alg.WordBytes())
	if alg.WordBits() == 32 {
		for i := range material {
			material[i] = uint64(binary.LittleEndian.Uint32(data[4*i:]))
		}
	} else {
		for i := range material {
			material[i] = binary.LittleEndian.Uint64(data[8*i:])
		}
	}
	return Seed(alg, len(data)/block, material)
}
