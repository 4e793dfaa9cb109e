// SPDX-License-Identifier: MIT
// Package: permav/perm
//
// stats.go — elementary statistics, cycle structure, lexicographic
// rank/unrank and generation of all or random permutations.

package perm

import (
	"fmt"
	"iter"
	"math/rand"
)

// maxRankLen is the largest length whose factorial fits in an int64.
const maxRankLen = 20

// Inversions counts pairs i < j with p[i] > p[j].
// Complexity: O(n²).
func (p *Perm) Inversions() int {
	count := 0
	for i, a := range p.seq {
		for _, b := range p.seq[i+1:] {
			if a > b {
				count++
			}
		}
	}

	return count
}

// Descents returns the positions i with p[i] > p[i+1].
func (p *Perm) Descents() []int {
	var out []int
	for i := 0; i+1 < len(p.seq); i++ {
		if p.seq[i] > p.seq[i+1] {
			out = append(out, i)
		}
	}

	return out
}

// Ascents returns the positions i with p[i] < p[i+1].
func (p *Perm) Ascents() []int {
	var out []int
	for i := 0; i+1 < len(p.seq); i++ {
		if p.seq[i] < p.seq[i+1] {
			out = append(out, i)
		}
	}

	return out
}

// FixedPoints returns the positions i with p[i] == i.
func (p *Perm) FixedPoints() []int {
	var out []int
	for i, v := range p.seq {
		if v == i {
			out = append(out, i)
		}
	}

	return out
}

// IsIdentity reports whether p[i] == i for every i.
func (p *Perm) IsIdentity() bool {
	for i, v := range p.seq {
		if v != i {
			return false
		}
	}

	return true
}

// IsIncreasing is an alias of IsIdentity.
func (p *Perm) IsIncreasing() bool { return p.IsIdentity() }

// IsDecreasing reports whether p is (n-1, ..., 0).
func (p *Perm) IsDecreasing() bool {
	n := len(p.seq)
	for i, v := range p.seq {
		if v != n-1-i {
			return false
		}
	}

	return true
}

// Cycles returns the cycle decomposition of p. Each cycle starts at its
// smallest element and cycles are ordered by that element.
func (p *Perm) Cycles() [][]int {
	seen := make([]bool, len(p.seq))
	var out [][]int
	for start := range p.seq {
		if seen[start] {
			continue
		}
		var cycle []int
		for x := start; !seen[x]; x = p.seq[x] {
			seen[x] = true
			cycle = append(cycle, x)
		}
		out = append(out, cycle)
	}

	return out
}

// Order returns the smallest m > 0 with p^m the identity, i.e. the least
// common multiple of the cycle lengths. The empty permutation has order 1.
func (p *Perm) Order() int {
	order := 1
	for _, c := range p.Cycles() {
		order = order / gcd(order, len(c)) * len(c)
	}

	return order
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Rank returns the position of p in the lexicographic listing of all
// permutations of its length, starting at 0.
//
// Errors: ErrIndex (ErrValue) for lengths above 20.
// Complexity: O(n²).
func (p *Perm) Rank() (int, error) {
	n := len(p.seq)
	if n > maxRankLen {
		return 0, fmt.Errorf("perm: Rank: length %d exceeds %d: %w", n, maxRankLen, ErrIndex)
	}
	rank := 0
	for i, v := range p.seq {
		// Lehmer digit: smaller values still unused to the right.
		smaller := 0
		for _, w := range p.seq[i+1:] {
			if w < v {
				smaller++
			}
		}
		rank = rank*(n-i) + smaller
	}

	return rank, nil
}

// Unrank is the inverse of Rank: the r-th permutation of length n in
// lexicographic order.
//
// Errors: ErrIndex (ErrValue) unless 0 <= n <= 20 and 0 <= r < n!.
func Unrank(n, r int) (*Perm, error) {
	if n < 0 || n > maxRankLen || r < 0 || r >= factorial(n) {
		return nil, fmt.Errorf("perm: Unrank(%d, %d): %w", n, r, ErrIndex)
	}

	// 1. Decode the Lehmer code, least significant digit last.
	code := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		base := n - i
		code[i] = r % base
		r /= base
	}

	// 2. Pick the code[i]-th unused value at each step.
	unused := make([]int, n)
	for i := range unused {
		unused[i] = i
	}
	seq := make([]int, n)
	for i, c := range code {
		seq[i] = unused[c]
		unused = append(unused[:c], unused[c+1:]...)
	}

	return fromOwned(seq), nil
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

// All yields every permutation of length n in lexicographic order.
// All(0) yields the empty permutation once; negative n yields nothing.
// Complexity: O(n) amortized per permutation.
func All(n int) iter.Seq[*Perm] {
	return func(yield func(*Perm) bool) {
		if n < 0 {
			return
		}
		cur := Identity(n).Slice()
		for {
			if !yield(fromOwned(append([]int(nil), cur...))) {
				return
			}
			if !nextPermutation(cur) {
				return
			}
		}
	}
}

// nextPermutation advances seq to its lexicographic successor in place.
// It returns false when seq was the last permutation.
func nextPermutation(seq []int) bool {
	// 1. Find the rightmost ascent.
	i := len(seq) - 2
	for i >= 0 && seq[i] > seq[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// 2. Swap with the smallest larger element to its right.
	j := len(seq) - 1
	for seq[j] < seq[i] {
		j--
	}
	seq[i], seq[j] = seq[j], seq[i]

	// 3. Reverse the suffix to make it increasing.
	for l, r := i+1, len(seq)-1; l < r; l, r = l+1, r-1 {
		seq[l], seq[r] = seq[r], seq[l]
	}

	return true
}

// Random returns a uniformly random permutation of length n drawn from rng.
// Negative n yields the empty permutation.
func Random(n int, rng *rand.Rand) *Perm {
	if n <= 0 {
		return empty
	}

	return fromOwned(rng.Perm(n))
}
