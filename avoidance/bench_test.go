// SPDX-License-Identifier: MIT
package avoidance_test

import (
	"testing"

	"github.com/katalvlaran/permav/avoidance"
	"github.com/katalvlaran/permav/basis"
)

// BenchmarkOfLength_Cached measures the lock-free read path once a level
// exists.
func BenchmarkOfLength_Cached(b *testing.B) {
	c := avoidance.MustOf(basis.MustParse("120"))
	_, _ = c.OfLength(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.OfLength(10)
	}
}

// BenchmarkAt_Sweep measures breadth-first indexed access over cached levels.
func BenchmarkAt_Sweep(b *testing.B) {
	c := avoidance.MustOf(basis.MustParse("2031_1302"))
	_, _ = c.OfLength(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.At(i % 2000)
	}
}
