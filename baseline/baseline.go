// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package baseline provides compact implementations of established
// pseudo-random generators for comparing biski64 against.
//
// Each generator is a direct transcription of its published algorithm
// and seeds from a single uint64. They are yardsticks for speed and
// output comparisons, not general purpose sources; use package biski64
// or math/rand for real work.
package baseline

import "golang.org/x/exp/biski64"

// Generator is the common surface of the registered generators.
type Generator interface {
	// Seed resets the generator to a state derived from seed alone.
	Seed(seed uint64)
	// Uint64 returns the next pseudo-random value.
	Uint64() uint64
}

// An Entry names a generator and constructs seeded instances of it.
type Entry struct {
	Name string
	New  func(seed uint64) Generator
}

// All lists the registered generators in comparison order, biski64
// first. The slice must not be modified.
var All = []Entry{
	{"biski64", func(seed uint64) Generator { return biski64.New(seed) }},
	{"wyrand", func(seed uint64) Generator { return NewWyRand(seed) }},
	{"sfc64", func(seed uint64) Generator { return NewSFC64(seed) }},
	{"xoroshiro128++", func(seed uint64) Generator { return NewXoroshiro128PP(seed) }},
	{"xoshiro256++", func(seed uint64) Generator { return NewXoshiro256PP(seed) }},
	{"pcg64", func(seed uint64) Generator { return NewPCG64(seed) }},
	{"pcg128", func(seed uint64) Generator { return NewPCG128(seed) }},
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, bool) {
	for _, e := range All {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the names of all registered generators, in order.
func Names() []string {
	names := make([]string, len(All))
	for i, e := range All {
		names[i] = e.Name
	}
	return names
}
