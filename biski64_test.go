// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package biski64

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Golden values for seed 12345, matching the upstream C implementation.
var golden = struct {
	seed  uint64
	state Source   // state immediately after seeding
	out   []uint64 // first outputs after seeding
}{
	seed: 12345,
	state: Source{
		fastLoop: 0xb833f1561a800bad,
		mix:      0x259fd5d396646821,
		loopMix:  0x08fdeabeae1c52f9,
	},
	out: []uint64{
		0x2e9dc0924480bb1a,
		0x8fd2b3f2f2f047d9,
		0x17bbf82c6284b8bd,
		0x9da272374079400f,
		0xdf49f285347354a1,
		0x0f4510e63e87e9ba,
		0x9a9e5fd96cd651fb,
		0xc66412a2e79be654,
	},
}

func TestGolden(t *testing.T) {
	s := New(golden.seed)
	if *s != golden.state {
		t.Errorf("New(%d) state = %+v, want %+v", golden.seed, *s, golden.state)
	}
	got := make([]uint64, len(golden.out))
	for i := range got {
		got[i] = s.Uint64()
	}
	if diff := cmp.Diff(golden.out, got); diff != "" {
		t.Errorf("New(%d) output mismatch (-want +got):\n%s", golden.seed, diff)
	}
}

func TestSplitMix64(t *testing.T) {
	// Published test vector for splitmix64 with state 0.
	want := []uint64{0xe220a8397b1dcdaf, 0x6e789e6aa1b965f4, 0x06c45d188009454f}
	var state uint64
	for i, w := range want {
		if got := splitmix64(&state); got != w {
			t.Errorf("splitmix64 output %d = %#016x, want %#016x", i, got, w)
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	for _, seed := range []uint64{0, 1, 12345, 0xdeadbeef, ^uint64(0)} {
		a, b := New(seed), New(seed)
		for i := 0; i < 100; i++ {
			x, y := a.Uint64(), b.Uint64()
			if x != y {
				t.Fatalf("seed %d: output %d diverged: %#x != %#x", seed, i, x, y)
			}
		}
	}
}

func TestReseed(t *testing.T) {
	s := New(1)
	for i := 0; i < 37; i++ {
		s.Uint64()
	}
	s.Seed(golden.seed)
	if *s != golden.state {
		t.Errorf("after reseed: state = %+v, want %+v", *s, golden.state)
	}
}

func TestSeedExpansion(t *testing.T) {
	// Seeding draws mix, loopMix and fastLoop, in that order, from one
	// splitmix64 sequence, then discards warmupRounds outputs.
	sm := golden.seed
	raw := Source{}
	raw.mix = splitmix64(&sm)
	raw.loopMix = splitmix64(&sm)
	raw.fastLoop = splitmix64(&sm)

	want := Source{
		fastLoop: 0x1e9a57bc80e6721d,
		mix:      0x22118258a9d111a0,
		loopMix:  0x346edce5f713f8ed,
	}
	if raw != want {
		t.Fatalf("pre-warmup state = %+v, want %+v", raw, want)
	}

	for i := 0; i < warmupRounds; i++ {
		raw.Uint64()
	}
	if raw != golden.state {
		t.Errorf("state after %d warmup rounds = %+v, want %+v", warmupRounds, raw, golden.state)
	}
}

func TestWarmupChangesOutput(t *testing.T) {
	// Without the warmup the first outputs would be these values, not
	// the golden ones.
	noWarmup := []uint64{0x56805f3ea0e50a8d, 0xd2dd6ce9a9b46bc5, 0xfccba40d2edb7e38}

	sm := golden.seed
	raw := Source{}
	raw.mix = splitmix64(&sm)
	raw.loopMix = splitmix64(&sm)
	raw.fastLoop = splitmix64(&sm)
	for i, w := range noWarmup {
		if got := raw.Uint64(); got != w {
			t.Errorf("unwarmed output %d = %#016x, want %#016x", i, got, w)
		}
	}
}

func TestWeylAdvance(t *testing.T) {
	if weylIncrement%2 == 0 {
		t.Fatalf("weylIncrement = %#x is even; fastLoop would not cycle through all values", uint64(weylIncrement))
	}
	s := New(99)
	init := s.fastLoop
	for i := 1; i <= 1000; i++ {
		s.Uint64()
		if want := init + uint64(i)*weylIncrement; s.fastLoop != want {
			t.Fatalf("after %d steps fastLoop = %#x, want %#x", i, s.fastLoop, want)
		}
	}
}

func TestSeedsDisagree(t *testing.T) {
	// Nearby seeds must not produce correlated openings.
	a, b := New(0), New(1)
	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same != 0 {
		t.Errorf("seeds 0 and 1 agreed on %d of first 64 outputs", same)
	}
}
