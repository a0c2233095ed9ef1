// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline

import "math/bits"

// WyRand is the wyrand generator from the wyhash suite,
//
//	https://github.com/wangyi-fudan/wyhash
//
// It advances a 64-bit Weyl counter and folds it with one widening
// multiply per output.
type WyRand struct {
	state uint64
}

// NewWyRand returns a WyRand seeded with seed.
func NewWyRand(seed uint64) *WyRand {
	r := new(WyRand)
	r.Seed(seed)
	return r
}

// Seed resets the generator. The seed becomes the counter directly.
func (r *WyRand) Seed(seed uint64) {
	r.state = seed
}

// Uint64 returns the next pseudo-random value.
func (r *WyRand) Uint64() uint64 {
	r.state += 0xa0761d6478bd642f
	hi, lo := bits.Mul64(r.state, r.state^0xe7037ed1a0b428db)
	return hi ^ lo
}
