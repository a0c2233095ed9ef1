// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package biski64 implements the biski64 pseudo-random number generator.
//
// biski64 is a fast non-cryptographic generator with 192 bits of state.
// A Weyl sequence folded into the state gives every seeded generator a
// period of at least 2^64 and allows many generators to be arranged as
// parallel streams that are guaranteed not to overlap underlying state
// for at least 2^64 outputs. The design and its statistical test
// results are described at
//
//	https://github.com/danielcota/biski64
//
// A Source is deterministic given its seed and is not safe for
// concurrent use by multiple goroutines. The output is not suitable
// for security-sensitive work; use crypto/rand for that.
package biski64

import "math/bits"

const (
	// weylIncrement advances fastLoop each step. It is odd, so fastLoop
	// walks a full 2^64 cycle regardless of seed.
	weylIncrement = 0x9999999999999999

	// warmupRounds is the number of outputs discarded after seeding,
	// diffusing the seed words before the first value is handed out.
	warmupRounds = 16
)

// Source is an instance of the biski64 generator. The zero value is
// unseeded; call Seed or SeedStream, or construct one with New or
// NewStream, before drawing numbers.
type Source struct {
	fastLoop uint64
	mix      uint64
	loopMix  uint64
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	s := new(Source)
	s.Seed(seed)
	return s
}

// NewStream returns a Source positioned on stream number stream of
// streams parallel streams derived from seed. See SeedStream.
func NewStream(seed uint64, stream, streams uint32) *Source {
	s := new(Source)
	s.SeedStream(seed, stream, streams)
	return s
}

// Seed uses the provided seed value to initialize the generator to a
// deterministic state. The three state words are drawn from a
// splitmix64 sequence started at seed, after which warmupRounds
// outputs are discarded.
func (s *Source) Seed(seed uint64) {
	sm := seed
	s.mix = splitmix64(&sm)
	s.loopMix = splitmix64(&sm)
	s.fastLoop = splitmix64(&sm)
	s.warmup()
}

// SeedStream initializes the generator as stream number stream of
// streams parallel streams sharing a seed. Every stream derives mix
// and loopMix from the same seed, but the fastLoop Weyl sequences are
// spaced evenly around their common 2^64 cycle, so no two streams
// visit the same fastLoop value within their next
// floor((2^64-1)/streams) outputs. SeedStream(seed, 0, 1) is
// equivalent to Seed(seed).
//
// SeedStream panics if streams is zero or stream >= streams.
func (s *Source) SeedStream(seed uint64, stream, streams uint32) {
	if streams == 0 {
		panic("biski64: SeedStream with zero streams")
	}
	if stream >= streams {
		panic("biski64: stream index out of range")
	}
	sm := seed
	s.mix = splitmix64(&sm)
	s.loopMix = splitmix64(&sm)
	if streams == 1 {
		s.fastLoop = splitmix64(&sm)
	} else {
		cycles := ^uint64(0) / uint64(streams)
		s.fastLoop = uint64(stream) * cycles * weylIncrement
	}
	s.warmup()
}

func (s *Source) warmup() {
	for i := 0; i < warmupRounds; i++ {
		s.Uint64()
	}
}

// Uint64 returns a pseudo-random 64-bit unsigned integer as a uint64.
func (s *Source) Uint64() uint64 {
	out := s.mix + s.loopMix
	old := s.loopMix
	s.loopMix = s.fastLoop ^ s.mix
	s.mix = bits.RotateLeft64(s.mix, 16) + bits.RotateLeft64(old, 40)
	s.fastLoop += weylIncrement
	return out
}

// splitmix64 advances state by the 64-bit golden ratio and mixes it
// into an output, following Steele, Lea, and Flood, "Fast Splittable
// Pseudorandom Number Generators".
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return z ^ z>>31
}
