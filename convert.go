// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package biski64

import "math/bits"

// Uint32 returns a pseudo-random 32-bit unsigned integer as a uint32,
// taken from the upper half of one 64-bit output.
func (s *Source) Uint32() uint32 {
	return uint32(s.Uint64() >> 32)
}

// Float64 returns a pseudo-random number in the half-open interval
// [0, 1) with 53 bits of precision.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) * (1.0 / (1 << 53))
}

// Uint64n returns a pseudo-random number in [0, n).
// It panics if n is zero.
func (s *Source) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("biski64: Uint64n with n == 0")
	}
	// Multiply-shift with rejection, after Lemire, "Fast Random
	// Integer Generation in an Interval".
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return hi
}
