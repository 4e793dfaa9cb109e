// SPDX-License-Identifier: MIT
package perm_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permav/perm"
)

// collect drains an occurrence sequence.
func collect(p, host *perm.Perm) [][]int {
	var out [][]int
	for occ := range p.OccurrencesIn(host) {
		out = append(out, occ)
	}

	return out
}

// bruteOccurrences enumerates every k-subset of host positions and keeps
// those whose values standardize to patt.
func bruteOccurrences(patt, host *perm.Perm) [][]int {
	k, n := patt.Len(), host.Len()
	var out [][]int
	idx := make([]int, k)
	var rec func(pos, start int)
	rec = func(pos, start int) {
		if pos == k {
			vals := make([]int, k)
			for i, x := range idx {
				vals[i] = host.At(x)
			}
			if perm.Standardize(vals).Equal(patt) {
				out = append(out, slices.Clone(idx))
			}
			return
		}
		for i := start; i < n; i++ {
			idx[pos] = i
			rec(pos+1, i+1)
		}
	}
	rec(0, 0)

	return out
}

func TestOccurrencesIn_Scenario(t *testing.T) {
	host := perm.Must(perm.New(5, 3, 0, 4, 2, 1))
	patt := perm.Must(perm.New(2, 0, 1))

	require.True(t, host.Contains(patt))
	want := [][]int{{0, 1, 3}, {0, 2, 3}, {0, 2, 4}, {0, 2, 5}, {1, 2, 4}, {1, 2, 5}}
	if diff := cmp.Diff(want, collect(patt, host)); diff != "" {
		t.Fatalf("occurrences mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6, patt.CountOccurrencesIn(host))
	assert.Equal(t, 6, len(slices.Collect(host.OccurrencesOf(patt))))
}

func TestOccurrencesIn_EdgeCases(t *testing.T) {
	host := perm.Must(perm.New(1, 0))

	// Empty pattern: exactly one empty occurrence, even in the empty host.
	assert.Equal(t, [][]int{{}}, collect(perm.Empty(), host))
	assert.Equal(t, [][]int{{}}, collect(perm.Empty(), perm.Empty()))

	// Longer pattern than host: nothing.
	assert.Empty(t, collect(perm.Identity(3), host))
	assert.Empty(t, collect(perm.Identity(1), perm.Empty()))

	// Nil host: nothing, no panic.
	assert.Empty(t, collect(perm.Identity(1), nil))
	assert.Empty(t, slices.Collect(host.OccurrencesOf(nil)))

	// Nil pattern: nothing, no panic.
	var none *perm.Perm
	assert.NotPanics(t, func() {
		assert.Empty(t, collect(none, host))
		assert.Zero(t, none.CountOccurrencesIn(host))
	})
}

func TestOccurrencesIn_EarlyStop(t *testing.T) {
	host := perm.Identity(8)
	count := 0
	for range perm.Identity(2).OccurrencesIn(host) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

// TestOccurrencesIn_BruteForce cross-checks the pruned search against
// exhaustive enumeration: every pattern up to length 4 against every host
// up to length 6, then random hosts of length 7 and 8.
func TestOccurrencesIn_BruteForce(t *testing.T) {
	var patterns []*perm.Perm
	for k := 0; k <= 4; k++ {
		for p := range perm.All(k) {
			patterns = append(patterns, p)
		}
	}

	for n := 0; n <= 6; n++ {
		for host := range perm.All(n) {
			for _, patt := range patterns {
				want := bruteOccurrences(patt, host)
				got := collect(patt, host)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("pattern %v host %v (-brute +search):\n%s", patt, host, diff)
				}
			}
		}
	}

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 60; trial++ {
		host := perm.Random(7+rng.Intn(2), rng)
		patt := perm.Random(1+rng.Intn(5), rng)
		require.Equal(t, len(bruteOccurrences(patt, host)), patt.CountOccurrencesIn(host),
			"pattern %v host %v", patt, host)
	}
}

func TestContainsAvoids(t *testing.T) {
	host := perm.Must(perm.New(5, 3, 0, 4, 2, 1))
	p012 := perm.Identity(3)
	p201 := perm.Must(perm.New(2, 0, 1))
	p10 := perm.Must(perm.New(1, 0))

	assert.False(t, host.Contains(p012))
	assert.True(t, host.Avoids(p012))
	assert.True(t, host.Contains(p201, p10))
	assert.False(t, host.Contains(p201, p012), "Contains requires every pattern")
	assert.False(t, host.Avoids(p201, p012), "Avoids requires no pattern")
	assert.True(t, host.Contains())
	assert.True(t, host.Avoids())
	assert.True(t, host.Contains(perm.Empty()))
	assert.False(t, host.Avoids(perm.Empty()))
	assert.True(t, host.Avoids(nil))
}

// TestOccurrencesIn_ConcurrentPattern shares one pattern across goroutines
// while its bound table is still unset.
func TestOccurrencesIn_ConcurrentPattern(t *testing.T) {
	patt := perm.Must(perm.New(1, 3, 0, 2))
	hosts := slices.Collect(perm.All(6))
	want := make([]int, len(hosts))
	for i, h := range hosts {
		want[i] = len(bruteOccurrences(patt, h))
	}

	const workers = 8
	results := make([][]int, workers)
	done := make(chan int)
	for w := 0; w < workers; w++ {
		go func(w int) {
			got := make([]int, len(hosts))
			for i, h := range hosts {
				got[i] = patt.CountOccurrencesIn(h)
			}
			results[w] = got
			done <- w
		}(w)
	}
	for w := 0; w < workers; w++ {
		<-done
	}
	for _, got := range results {
		require.Equal(t, want, got)
	}
}
