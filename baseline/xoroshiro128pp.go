// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline

import "math/bits"

// Xoroshiro128PP is the xoroshiro128++ generator of Blackman and
// Vigna,
//
//	https://prng.di.unimi.it/xoroshiro128plusplus.c
//
// with 128 bits of state and period 2^128-1.
type Xoroshiro128PP struct {
	s0, s1 uint64
}

// NewXoroshiro128PP returns an Xoroshiro128PP seeded with seed.
func NewXoroshiro128PP(seed uint64) *Xoroshiro128PP {
	r := new(Xoroshiro128PP)
	r.Seed(seed)
	return r
}

// Seed expands seed into the state words with splitmix64, following
// the authors' seeding guidance. The all-zero state cannot occur.
func (r *Xoroshiro128PP) Seed(seed uint64) {
	sm := seed
	r.s0 = splitmix64(&sm)
	r.s1 = splitmix64(&sm)
}

// Uint64 returns the next pseudo-random value.
func (r *Xoroshiro128PP) Uint64() uint64 {
	s0, s1 := r.s0, r.s1
	out := bits.RotateLeft64(s0+s1, 17) + s0
	s1 ^= s0
	r.s0 = bits.RotateLeft64(s0, 49) ^ s1 ^ (s1 << 21)
	r.s1 = bits.RotateLeft64(s1, 28)
	return out
}
