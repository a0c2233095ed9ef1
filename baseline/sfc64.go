// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline

import "math/bits"

// SFC64 is Chris Doty-Humphrey's small fast counting generator, as
// shipped with the PractRand test suite. Three chaotic words are
// stirred together with a 64-bit counter that guarantees a minimum
// period of 2^64.
type SFC64 struct {
	a, b, c, w uint64
}

// NewSFC64 returns an SFC64 seeded with seed.
func NewSFC64(seed uint64) *SFC64 {
	r := new(SFC64)
	r.Seed(seed)
	return r
}

// Seed resets the generator, loading seed into the three chaotic
// words and discarding 12 outputs to stir them apart.
func (r *SFC64) Seed(seed uint64) {
	r.a, r.b, r.c, r.w = seed, seed, seed, 1
	for i := 0; i < 12; i++ {
		r.Uint64()
	}
}

// Uint64 returns the next pseudo-random value.
func (r *SFC64) Uint64() uint64 {
	out := r.a + r.b + r.w
	r.w++
	r.a = r.b ^ (r.b >> 11)
	r.b = r.c + (r.c << 3)
	r.c = bits.RotateLeft64(r.c, 24) + out
	return out
}
