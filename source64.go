// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package biski64

import "math/rand"

const maxInt63 = 1<<63 - 1

// NewSource returns a rand.Source64 backed by a biski64 generator
// seeded with seed, for use wherever a math/rand source is accepted:
//
//	r := rand.New(biski64.NewSource(1))
//
// The returned source is not safe for concurrent use.
func NewSource(seed int64) rand.Source64 {
	var s source64
	s.src.Seed(uint64(seed))
	return &s
}

// NewRand returns a *rand.Rand drawing from a biski64 generator
// seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(NewSource(seed))
}

type source64 struct {
	src Source
}

func (s *source64) Seed(seed int64) { s.src.Seed(uint64(seed)) }

func (s *source64) Uint64() uint64 { return s.src.Uint64() }

func (s *source64) Int63() int64 { return int64(s.src.Uint64() & maxInt63) }
