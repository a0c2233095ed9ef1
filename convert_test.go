// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package biski64

import "testing"

func TestUint32(t *testing.T) {
	if got := New(golden.seed).Uint32(); got != 0x2e9dc092 {
		t.Errorf("first Uint32 for seed %d = %#08x, want 0x2e9dc092", golden.seed, got)
	}
	a, b := New(3), New(3)
	for i := 0; i < 100; i++ {
		if got, want := a.Uint32(), uint32(b.Uint64()>>32); got != want {
			t.Fatalf("output %d: Uint32 = %#x, want top half %#x", i, got, want)
		}
	}
}

func TestFloat64(t *testing.T) {
	if got := New(golden.seed).Float64(); got != 0.1820946080301863 {
		t.Errorf("first Float64 for seed %d = %v, want 0.1820946080301863", golden.seed, got)
	}
	a, b := New(3), New(3)
	for i := 0; i < 1000; i++ {
		f := a.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("output %d: Float64 = %v, out of [0, 1)", i, f)
		}
		if want := float64(b.Uint64()>>11) / (1 << 53); f != want {
			t.Fatalf("output %d: Float64 = %v, want %v", i, f, want)
		}
	}
}

func TestUint64n(t *testing.T) {
	s := New(golden.seed)
	if got := s.Uint64n(6); got != 1 {
		t.Errorf("first Uint64n(6) for seed %d = %d, want 1", golden.seed, got)
	}
	for _, n := range []uint64{1, 2, 3, 10, 1 << 40, ^uint64(0)} {
		for i := 0; i < 100; i++ {
			if got := s.Uint64n(n); got >= n {
				t.Fatalf("Uint64n(%d) = %d, out of range", n, got)
			}
		}
	}
	if !panics(func() { s.Uint64n(0) }) {
		t.Error("Uint64n(0): got no panic, want panic")
	}
}

func TestUint64nCoversRange(t *testing.T) {
	// Every residue of a small bound should appear quickly.
	s := New(1)
	const n = 8
	var seen [n]bool
	remaining := n
	for i := 0; i < 1000 && remaining > 0; i++ {
		v := s.Uint64n(n)
		if !seen[v] {
			seen[v] = true
			remaining--
		}
	}
	if remaining != 0 {
		t.Errorf("Uint64n(%d): %d residues never drawn in 1000 tries: %v", n, remaining, seen)
	}
}
