// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline

import "math/bits"

// Xoshiro256PP is the xoshiro256++ generator of Blackman and Vigna,
//
//	https://prng.di.unimi.it/xoshiro256plusplus.c
//
// with 256 bits of state and period 2^256-1.
type Xoshiro256PP struct {
	s [4]uint64
}

// NewXoshiro256PP returns an Xoshiro256PP seeded with seed.
func NewXoshiro256PP(seed uint64) *Xoshiro256PP {
	r := new(Xoshiro256PP)
	r.Seed(seed)
	return r
}

// Seed expands seed into the state words with splitmix64, following
// the authors' seeding guidance. The all-zero state cannot occur.
func (r *Xoshiro256PP) Seed(seed uint64) {
	sm := seed
	for i := range r.s {
		r.s[i] = splitmix64(&sm)
	}
}

// Uint64 returns the next pseudo-random value.
func (r *Xoshiro256PP) Uint64() uint64 {
	s := &r.s
	out := bits.RotateLeft64(s[0]+s[3], 23) + s[0]
	t := s[1] << 17
	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)
	return out
}
