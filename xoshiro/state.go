package xoshiro

import (
	"encoding/binary"
	"fmt"
)

// State holds the random number state for a single stream. It is
// mutated in place by Next, Jump and LongJump and must never be shared
// between two logical streams.
type State struct {
	alg  Algorithm
	word []uint64 // one entry per state integer; 32-bit variants use the low halves

	// Deterministic makes the distribution samplers return the
	// analytic expectation of a draw instead of consuming random
	// numbers.
	Deterministic bool
}

// Algorithm returns the variant identity this state belongs to. Two
// states may only be compared, jumped or exchanged within the same
// identity.
func (s *State) Algorithm() Algorithm { return s.alg }

// Size returns the number of state integers.
func (s *State) Size() int { return s.alg.Size() }

// Next advances the stream by one step and returns the raw draw. For
// 32-bit variants the low 32 bits carry the value.
func (s *State) Next() uint64 {
	return variants[s.alg].next(s.word)
}

// NextFloat64 returns the next draw converted to a float64 strictly
// inside (0, 1).
func (s *State) NextFloat64() float64 {
	if s.alg.WordBits() == 32 {
		return Float64FromUint32(uint32(s.Next()))
	}
	return Float64FromUint64(s.Next())
}

// NextFloat32 returns the next draw converted to a float32 strictly
// inside (0, 1).
func (s *State) NextFloat32() float32 {
	if s.alg.WordBits() == 32 {
		return Float32FromUint32(uint32(s.Next()))
	}
	return Float32FromUint64(s.Next())
}

// Jump advances the stream by a fixed, huge number of draws (2^64 for
// the 128-bit states, 2^128 for 256, 2^256 for 512) in time
// proportional to the state size. Jumped streams never overlap the
// original within any realistic draw count.
func (s *State) Jump() {
	s.applyJump(variants[s.alg].jump)
}

// LongJump is the coarser-grained jump (2^96, 2^192 and 2^384 draws
// respectively), used to decorrelate whole groups of streams.
func (s *State) LongJump() {
	s.applyJump(variants[s.alg].longJump)
}

// applyJump folds the full-state transform into an accumulator once
// per set bit of the jump polynomial.
func (s *State) applyJump(table []uint64) {
	v := &variants[s.alg]
	acc := make([]uint64, len(s.word))
	for _, c := range table {
		for b := 0; b < v.bits; b++ {
			if c&(1<<uint(b)) != 0 {
				for i, w := range s.word {
					acc[i] ^= w
				}
			}
			v.next(s.word)
		}
	}
	copy(s.word, acc)
}

// Equal reports whether two states have the same algorithm, word array
// and deterministic flag.
func (s *State) Equal(o *State) bool {
	if s.alg != o.alg || s.Deterministic != o.Deterministic {
		return false
	}
	for i, w := range s.word {
		if w != o.word[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	c := &State{alg: s.alg, word: make([]uint64, len(s.word)), Deterministic: s.Deterministic}
	copy(c.word, s.word)
	return c
}

// Words returns a copy of the state integers.
func (s *State) Words() []uint64 {
	out := make([]uint64, len(s.word))
	copy(out, s.word)
	return out
}

// MarshalBinary serializes the state as little-endian packed integers
// of the variant's native width, BlockBytes() bytes in total.
func (s *State) MarshalBinary() ([]byte, error) {
	buf := make([]byte, s.alg.BlockBytes())
	if s.alg.WordBits() == 32 {
		for i, w := range s.word {
			binary.LittleEndian.PutUint32(buf[4*i:], uint32(w))
		}
	} else {
		for i, w := range s.word {
			binary.LittleEndian.PutUint64(buf[8*i:], w)
		}
	}
	return buf, nil
}

// UnmarshalBinary restores state previously produced by MarshalBinary.
// The algorithm identity is not part of the encoding and must already
// be set.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != s.alg.BlockBytes() {
		return fmt.Errorf("state for %s requires %d bytes, got %d",
			s.alg, s.alg.BlockBytes(), len(data))
	}
	if s.alg.WordBits() == 32 {
		for i := range s.word {
			s.word[i] = uint64(binary.LittleEndian.Uint32(data[4*i:]))
		}
	} else {
		for i := range s.word {
			s.word[i] = binary.LittleEndian.Uint64(data[8*i:])
		}
	}
	return nil
}
