package xoshiro

import "math/bits"

// variant carries everything the dispatch needs for one algorithm:
// metadata, the next-value recurrence and the jump polynomials. The
// table is the tagged-union rendition of one-type-per-variant; the hot
// path pays a single indirect call and no branching.
type variant struct {
	name      string
	bits      int
	size      int
	scrambler Scrambler

	// next advances the state in place and returns the scrambler
	// output computed from the pre-step words. For 32-bit variants
	// only the low 32 bits of each word (and of the result) are
	// significant.
	next func(s []uint64) uint64

	jump     []uint64
	longJump []uint64
}

var variants = [nAlgorithms]variant{
	Xoshiro128Plus:       {"xoshiro128plus", 32, 4, Plus, nextXoshiro128Plus, jump128, longJump128},
	Xoshiro128PlusPlus:   {"xoshiro128plusplus", 32, 4, PlusPlus, nextXoshiro128PlusPlus, jump128, longJump128},
	Xoshiro128StarStar:   {"xoshiro128starstar", 32, 4, StarStar, nextXoshiro128StarStar, jump128, longJump128},
	Xoroshiro128Plus:     {"xoroshiro128plus", 64, 2, Plus, nextXoroshiro128Plus, jumpXoro, longJumpXoro},
	Xoroshiro128PlusPlus: {"xoroshiro128plusplus", 64, 2, PlusPlus, nextXoroshiro128PlusPlus, jumpXoroPP, longJumpXoroPP},
	Xoroshiro128StarStar: {"xoroshiro128starstar", 64, 2, StarStar, nextXoroshiro128StarStar, jumpXoro, longJumpXoro},
	Xoshiro256Plus:       {"xoshiro256plus", 64, 4, Plus, nextXoshiro256Plus, jump256, longJump256},
	Xoshiro256PlusPlus:   {"xoshiro256plusplus", 64, 4, PlusPlus, nextXoshiro256PlusPlus, jump256, longJump256},
	Xoshiro256StarStar:   {"xoshiro256starstar", 64, 4, StarStar, nextXoshiro256StarStar, jump256, longJump256},
	Xoshiro512Plus:       {"xoshiro512plus", 64, 8, Plus, nextXoshiro512Plus, jump512, longJump512},
	Xoshiro512PlusPlus:   {"xoshiro512plusplus", 64, 8, PlusPlus, nextXoshiro512PlusPlus, jump512, longJump512},
	Xoshiro512StarStar:   {"xoshiro512starstar", 64, 8, StarStar, nextXoshiro512StarStar, jump512, longJump512},
}

// Jump polynomials from the reference sources. A jump advances a
// stream by 2^(k/2) draws for a k-bit state, a long jump by 2^(3k/4).
var (
	jump128     = []uint64{0x8764000b, 0xf542d2d3, 0x6fa035c3, 0x77f2db5b}
	longJump128 = []uint64{0xb523952e, 0x0b6f099f, 0xccf5a0ef, 0x1c580662}

	jumpXoro     = []uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}
	longJumpXoro = []uint64{0xd2a98b26625eee7b, 0xdddf9b1090aa7ac1}

	jumpXoroPP     = []uint64{0x2bd7a6a6e99c2ddc, 0x0992ccaf6a6fca05}
	longJumpXoroPP = []uint64{0x360fd5f2cf8d5d99, 0x9c6e6877736c46e3}

	jump256     = []uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c}
	longJump256 = []uint64{0x76e15d3efefdcbbf, 0xc5004e441c522fb3, 0x77710069854ee241, 0x39109bb02acbe635}

	jump512 = []uint64{
		0x33ed89b6e7a353f9, 0x760083d7955323be, 0x2837f2fbb5f22fae, 0x4b8c5674d309511c,
		0xb11ac47a7ba28c25, 0xf1be7667092bcc1c, 0x53851efdb6df0aaf, 0x1ebbc8b23eaf25db,
	}
	longJump512 = []uint64{
		0x11467fef8f921d28, 0xa2a819f2e79c8ea8, 0xa8299fc284b3959a, 0xb4d347340ca63ee1,
		0x1cb0940bedbff6ce, 0xd956c5c4fa1f8e17, 0x915e38fd4eda93bc, 0x5b3ccdfa5d7daca5,
	}
)

// xoshiro128: four 32-bit words.

func stepXoshiro128(s []uint64) {
	s0, s1, s2, s3 := uint32(s[0]), uint32(s[1]), uint32(s[2]), uint32(s[3])
	t := s1 << 9
	s2 ^= s0
	s3 ^= s1
	s1 ^= s2
	s0 ^= s3
	s2 ^= t
	s3 = bits.RotateLeft32(s3, 11)
	s[0], s[1], s[2], s[3] = uint64(s0), uint64(s1), uint64(s2), uint64(s3)
}

func nextXoshiro128Plus(s []uint64) uint64 {
	r := uint32(s[0]) + uint32(s[3])
	stepXoshiro128(s)
	return uint64(r)
}

func nextXoshiro128PlusPlus(s []uint64) uint64 {
	r := bits.RotateLeft32(uint32(s[0])+uint32(s[3]), 7) + uint32(s[0])
	stepXoshiro128(s)
	return uint64(r)
}

func nextXoshiro128StarStar(s []uint64) uint64 {
	r := bits.RotateLeft32(uint32(s[1])*5, 7) * 9
	stepXoshiro128(s)
	return uint64(r)
}

// xoroshiro128: two 64-bit words. Unlike the xoshiro generators the
// rotation constants here differ between the ++ scrambler and the
// other two.

func stepXoroshiro128(s []uint64, a, b, c int) {
	s1 := s[1] ^ s[0]
	s[0] = bits.RotateLeft64(s[0], a) ^ s1 ^ (s1 << b)
	s[1] = bits.RotateLeft64(s1, c)
}

func nextXoroshiro128Plus(s []uint64) uint64 {
	r := s[0] + s[1]
	stepXoroshiro128(s, 24, 16, 37)
	return r
}

func nextXoroshiro128PlusPlus(s []uint64) uint64 {
	r := bits.RotateLeft64(s[0]+s[1], 17) + s[0]
	stepXoroshiro128(s, 49, 21, 28)
	return r
}

func nextXoroshiro128StarStar(s []uint64) uint64 {
	r := bits.RotateLeft64(s[0]*5, 7) * 9
	stepXoroshiro128(s, 24, 16, 37)
	return r
}

// xoshiro256: four 64-bit words.

func stepXoshiro256(s []uint64) {
	t := s[1] << 17
	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)
}

func nextXoshiro256Plus(s []uint64) uint64 {
	r := s[0] + s[3]
	stepXoshiro256(s)
	return r
}

func nextXoshiro256PlusPlus(s []uint64) uint64 {
	r := bits.RotateLeft64(s[0]+s[3], 23) + s[0]
	stepXoshiro256(s)
	return r
}

func nextXoshiro256StarStar(s []uint64) uint64 {
	r := bits.RotateLeft64(s[1]*5, 7) * 9
	stepXoshiro256(s)
	return r
}

// xoshiro512: eight 64-bit words.

func stepXoshiro512(s []uint64) {
	t := s[1] << 11
	s[2] ^= s[0]
	s[5] ^= s[1]
	s[1] ^= s[2]
	s[7] ^= s[3]
	s[3] ^= s[4]
	s[4] ^= s[5]
	s[0] ^= s[6]
	s[6] ^= s[7]
	s[6] ^= t
	s[7] = bits.RotateLeft64(s[7], 21)
}

func nextXoshiro512Plus(s []uint64) uint64 {
	r := s[0] + s[2]
	stepXoshiro512(s)
	return r
}

func nextXoshiro512PlusPlus(s []uint64) uint64 {
	r := bits.RotateLeft64(s[0]+s[2], 17) + s[2]
	stepXoshiro512(s)
	return r
}

func nextXoshiro512StarStar(s []uint64) uint64 {
	r := bits.RotateLeft64(s[1]*5, 7) * 9
	stepXoshiro512(s)
	return r
}
