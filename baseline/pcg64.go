// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline

import "math/bits"

const (
	pcg64Mult = 6364136223846793005
	pcg64Inc  = 0xda3e39cb94b95bdb
)

// PCG64 is a 64-bit-state member of O'Neill's permuted congruential
// family,
//
//	https://www.pcg-random.org/
//
// pairing a multiplicative LCG step with a xorshift and
// state-dependent rotate on output.
type PCG64 struct {
	state uint64
}

// NewPCG64 returns a PCG64 seeded with seed.
func NewPCG64(seed uint64) *PCG64 {
	r := new(PCG64)
	r.Seed(seed)
	return r
}

// Seed resets the generator with the reference seeding sequence: the
// state starts at zero, steps once, absorbs seed and steps again.
func (r *PCG64) Seed(seed uint64) {
	r.state = 0
	r.step()
	r.state += seed
	r.step()
}

func (r *PCG64) step() {
	r.state = r.state*pcg64Mult + pcg64Inc
}

// Uint64 returns the next pseudo-random value.
func (r *PCG64) Uint64() uint64 {
	old := r.state
	r.step()
	return bits.RotateLeft64(old>>22^old, -int(old>>61+22))
}
