package mcstate2

import "github.com/mrc-ide/mcstate2/xoshiro"

// Pointer models the handle a host-language binding holds on an Rng:
// the live generator plus a lazily refreshed serialized copy. The
// cache is a simple dirty-bit scheme: every hand-out of the live
// generator marks it stale, Sync refreshes it only when stale, and any
// external read of the cached form forces a sync first.
type Pointer struct {
	rng     *Rng
	state   []byte
	current bool
}

// NewPointer builds a handle over a fresh collection, applying
// longJumps long jumps first so independent replicates sharing a seed
// stay decorrelated.
func NewPointer(alg xoshiro.Algorithm, nStreams int, seed uint64, longJumps int) *Pointer {
	rng := New(alg, nStreams, seed)
	for i := 0; i < longJumps; i++ {
		rng.LongJump()
	}
	p := &Pointer{rng: rng}
	p.Sync()
	return p
}

// Reattach rebuilds a handle from a previously synced cache. The
// algorithm name must match a supported variant; state length
// validation follows the raw seeding rules.
func Reattach(algorithm string, state []byte) (*Pointer, error) {
	alg, err := xoshiro.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	rng, err := NewFromBytes(alg, state)
	if err != nil {
		return nil, err
	}
	cached := make([]byte, len(state))
	copy(cached, state)
	return &Pointer{rng: rng, state: cached, current: true}, nil
}

// Algorithm returns the handle's generator identity.
func (p *Pointer) Algorithm() xoshiro.Algorithm { return p.rng.alg }

// Size returns the number of streams held.
func (p *Pointer) Size() int { return p.rng.Size() }

// Get hands out the live generator for mutation. The expected
// algorithm must match the handle's and, when nStreams > 0, the
// collection must hold at least that many streams. The cached copy is
// marked stale.
func (p *Pointer) Get(alg xoshiro.Algorithm, nStreams int) (*Rng, error) {
	if alg != p.rng.alg {
		return nil, &AlgorithmMismatchError{Given: alg.String(), Expected: p.rng.alg.String()}
	}
	if nStreams > 0 && p.rng.Size() < nStreams {
		return nil, &StreamCountError{Requested: nStreams, Have: p.rng.Size()}
	}
	p.current = false
	return p.rng, nil
}

// IsCurrent reports whether the cached copy reflects the live state.
func (p *Pointer) IsCurrent() bool { return p.current }

// Sync refreshes the cached copy if it is stale.
func (p *Pointer) Sync() {
	if !p.current {
		p.state = p.rng.ExportState()
		p.current = true
	}
}

// CachedState returns the serialized state, syncing first.
func (p *Pointer) CachedState() []byte {
	p.Sync()
	out := make([]byte, len(p.state))
	copy(out, p.state)
	return out
}
