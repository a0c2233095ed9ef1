// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline_test

import (
	"testing"

	"golang.org/x/exp/biski64"
	"golang.org/x/exp/biski64/baseline"
)

// Sink keeps benchmark loops from being optimized away.
var Sink uint64

// BenchmarkGenerators times every registered generator through the
// Generator interface, so the per-call dispatch cost is identical
// across entries.
func BenchmarkGenerators(b *testing.B) {
	for _, e := range baseline.All {
		b.Run(e.Name, func(b *testing.B) {
			g := e.New(1)
			b.ReportAllocs()
			b.ResetTimer()
			var t uint64
			for n := b.N; n > 0; n-- {
				t += g.Uint64()
			}
			Sink = t
		})
	}
}

// BenchmarkBiski64Direct times biski64 without the interface, for
// measuring what the dispatch in BenchmarkGenerators costs.
func BenchmarkBiski64Direct(b *testing.B) {
	s := biski64.New(1)
	var t uint64
	for n := b.N; n > 0; n-- {
		t += s.Uint64()
	}
	Sink = t
}
