// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline

import "math/bits"

// PCG128 is the pcg64 generator of the PCG reference library: a
// 128-bit multiplicative LCG with the XSL-RR output permutation,
//
//	https://www.pcg-random.org/
//
// The 128-bit state is carried in two uint64 halves.
type PCG128 struct {
	hi, lo uint64
}

// NewPCG128 returns a PCG128 seeded with seed.
func NewPCG128(seed uint64) *PCG128 {
	r := new(PCG128)
	r.Seed(seed)
	return r
}

// Seed expands seed into the 128-bit state with splitmix64.
func (r *PCG128) Seed(seed uint64) {
	sm := seed
	r.hi = splitmix64(&sm)
	r.lo = splitmix64(&sm)
}

// Uint64 returns the next pseudo-random value.
func (r *PCG128) Uint64() uint64 {
	const (
		mulHi = 2549297995355413924
		mulLo = 4865540595714422341
		incHi = 6364136223846793005
		incLo = 1442695040888963407
	)

	// 128-bit multiply-add, truncated to the low 128 bits.
	hi, lo := bits.Mul64(r.lo, mulLo)
	hi += r.hi*mulLo + r.lo*mulHi
	lo, c := bits.Add64(lo, incLo, 0)
	hi, _ = bits.Add64(hi, incHi, c)
	r.hi, r.lo = hi, lo

	return bits.RotateLeft64(lo^hi, -int(hi>>58))
}
