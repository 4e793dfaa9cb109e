// SPDX-License-Identifier: MIT
// Package: permav/perm
//
// occurrences.go — pattern occurrence search and the containment/avoidance
// predicates built on it.

package perm

import (
	"iter"
	"slices"
)

// OccurrencesIn returns the lazy sequence of occurrences of pattern p in
// host: every strictly increasing index tuple (i0 < ... < ik-1) such that
// host[i0], ..., host[ik-1] standardizes to p. Tuples are produced in
// lexicographic order; each yielded slice is owned by the caller.
//
// Edge cases:
//   - The empty pattern occurs exactly once, as the empty tuple, in every host.
//   - A pattern longer than the host, a nil host or a nil pattern yields
//     nothing.
//
// Complexity: exponential in len(p) in the worst case, O(1) per step.
func (p *Perm) OccurrencesIn(host *Perm) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if p == nil || host == nil {
			return
		}
		k, n := len(p.seq), len(host.seq)
		if k == 0 {
			yield([]int{})
			return
		}
		if k > n {
			return
		}
		s := &searcher{
			rows: p.boundTable().rows,
			host: host.seq,
			k:    k,
			n:    n,
			occ:  make([]int, k),
		}
		s.walk(0, 0, yield)
	}
}

// OccurrencesOf returns the occurrences of patt in p; it mirrors
// patt.OccurrencesIn(p).
func (p *Perm) OccurrencesOf(patt *Perm) iter.Seq[[]int] {
	if patt == nil {
		return func(func([]int) bool) {}
	}

	return patt.OccurrencesIn(p)
}

// CountOccurrencesIn returns the number of occurrences of p in host.
func (p *Perm) CountOccurrencesIn(host *Perm) int {
	count := 0
	for range p.OccurrencesIn(host) {
		count++
	}

	return count
}

// occursIn reports whether p has at least one occurrence in host.
func (p *Perm) occursIn(host *Perm) bool {
	if p == nil || host == nil || len(p.seq) > len(host.seq) {
		return false
	}
	for range p.OccurrencesIn(host) {
		return true
	}

	return false
}

// Contains reports whether every one of patts occurs in p.
// With no arguments it returns true. Nil patterns never occur.
func (p *Perm) Contains(patts ...*Perm) bool {
	for _, patt := range patts {
		if !patt.occursIn(p) {
			return false
		}
	}

	return true
}

// Avoids reports whether none of patts occurs in p.
// With no arguments it returns true.
func (p *Perm) Avoids(patts ...*Perm) bool {
	for _, patt := range patts {
		if patt.occursIn(p) {
			return false
		}
	}

	return true
}

// searcher holds the state of one backtracking walk.
type searcher struct {
	rows []boundRow // pattern bound table
	host []int      // host one-line notation
	k, n int        // pattern and host lengths
	occ  []int      // occ[j] = host index chosen for pattern position j
}

// walk assigns pattern position j to host indices >= start and recurses.
// It returns false once the consumer stopped the iteration.
func (s *searcher) walk(j, start int, yield func([]int) bool) bool {
	last := j+1 == s.k
	// Stop once fewer host positions remain than pattern positions needed.
	for i := start; s.n-i >= s.k-j; i++ {
		if !s.admissible(j, i) {
			continue
		}
		s.occ[j] = i
		if last {
			if !yield(slices.Clone(s.occ)) {
				return false
			}
			continue
		}
		if !s.walk(j+1, i+1, yield) {
			return false
		}
	}

	return true
}

// admissible reports whether host index i may stand for pattern position j
// given the host indices already chosen for positions 0..j-1.
func (s *searcher) admissible(j, i int) bool {
	r := s.rows[j]
	v := s.host[i]

	lo := r.low
	if r.floor != noBound {
		lo += s.host[s.occ[r.floor]]
	}
	hi := s.n - r.high
	if r.ceil != noBound {
		hi = s.host[s.occ[r.ceil]] - r.high
	}

	return lo <= v && v <= hi
}
