// SPDX-License-Identifier: MIT
// Package: permav/permset
//
// variants.go — the concrete Set strategies.

package permset

import (
	"iter"
	"math"
	"slices"
	"sync"

	"github.com/katalvlaran/permav/avoidance"
	"github.com/katalvlaran/permav/perm"
)

// avoidSet delegates to the shared avoidance engine.
type avoidSet struct {
	class *avoidance.Class
}

func (s avoidSet) Kind() Kind { return KindAvoidance }

func (s avoidSet) OfLength(k int) ([]*perm.Perm, error) {
	lvl, err := s.class.OfLength(k)
	if err != nil {
		return nil, err
	}

	return lvl.Perms(), nil
}

func (s avoidSet) Contains(p *perm.Perm) (bool, error) { return s.class.Contains(p) }

func (s avoidSet) All() iter.Seq[*perm.Perm] { return s.class.All() }

func (s avoidSet) Counts(maxLen int) []int { return s.class.Counts(maxLen) }

// monotoneSet is Av(01) (decreasing) or Av(10) (increasing).
type monotoneSet struct {
	decreasing bool
}

func (s monotoneSet) Kind() Kind { return KindMonotone }

func (s monotoneSet) member(k int) *perm.Perm {
	if s.decreasing {
		return perm.Decreasing(k)
	}

	return perm.Identity(k)
}

func (s monotoneSet) OfLength(k int) ([]*perm.Perm, error) {
	if err := checkLength("OfLength", k); err != nil {
		return nil, err
	}

	return []*perm.Perm{s.member(k)}, nil
}

func (s monotoneSet) Contains(p *perm.Perm) (bool, error) {
	if err := checkMember(p); err != nil {
		return false, err
	}
	if s.decreasing {
		return p.IsDecreasing(), nil
	}

	return p.IsIncreasing(), nil
}

func (s monotoneSet) All() iter.Seq[*perm.Perm] {
	return func(yield func(*perm.Perm) bool) {
		for k := 0; ; k++ {
			if !yield(s.member(k)) {
				return
			}
		}
	}
}

func (s monotoneSet) Counts(maxLen int) []int {
	if maxLen < 0 {
		return nil
	}
	out := make([]int, maxLen+1)
	for k := range out {
		out[k] = 1
	}

	return out
}

// allSet is the class of the empty basis.
type allSet struct{}

func (allSet) Kind() Kind { return KindAll }

func (allSet) OfLength(k int) ([]*perm.Perm, error) {
	if err := checkLength("OfLength", k); err != nil {
		return nil, err
	}

	return slices.Collect(perm.All(k)), nil
}

func (allSet) Contains(p *perm.Perm) (bool, error) {
	if err := checkMember(p); err != nil {
		return false, err
	}

	return true, nil
}

func (allSet) All() iter.Seq[*perm.Perm] {
	return func(yield func(*perm.Perm) bool) {
		for k := 0; ; k++ {
			for p := range perm.All(k) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func (allSet) Counts(maxLen int) []int {
	if maxLen < 0 {
		return nil
	}
	out := make([]int, maxLen+1)
	for k := range out {
		out[k] = factorial(k)
	}

	return out
}

// factorial returns n!, saturating at math.MaxInt (from 21! on 64-bit).
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		if f > math.MaxInt/i {
			return math.MaxInt
		}
		f *= i
	}

	return f
}

// finiteSet is a fully computed collection, grouped by length.
type finiteSet struct {
	byLen map[int][]*perm.Perm
	index map[string]struct{}
	order []*perm.Perm // sorted by (length, lexicographic)
}

// newFinite sorts and deduplicates ps.
func newFinite(ps []*perm.Perm) *finiteSet {
	order := slices.Clone(ps)
	slices.SortFunc(order, (*perm.Perm).Compare)
	order = slices.CompactFunc(order, (*perm.Perm).Equal)

	s := &finiteSet{
		byLen: make(map[int][]*perm.Perm),
		index: make(map[string]struct{}, len(order)),
		order: order,
	}
	for _, p := range order {
		s.byLen[p.Len()] = append(s.byLen[p.Len()], p)
		s.index[p.Key()] = struct{}{}
	}

	return s
}

func (s *finiteSet) Kind() Kind { return KindFinite }

func (s *finiteSet) OfLength(k int) ([]*perm.Perm, error) {
	if err := checkLength("OfLength", k); err != nil {
		return nil, err
	}

	return slices.Clone(s.byLen[k]), nil
}

func (s *finiteSet) Contains(p *perm.Perm) (bool, error) {
	if err := checkMember(p); err != nil {
		return false, err
	}
	_, ok := s.index[p.Key()]

	return ok, nil
}

func (s *finiteSet) All() iter.Seq[*perm.Perm] { return slices.Values(s.order) }

func (s *finiteSet) Counts(maxLen int) []int {
	if maxLen < 0 {
		return nil
	}
	out := make([]int, maxLen+1)
	for k := range out {
		out[k] = len(s.byLen[k])
	}

	return out
}

// lengthSet is every permutation of length n, materialized on first use.
type lengthSet struct {
	n     int
	once  sync.Once
	perms []*perm.Perm
}

func (s *lengthSet) Kind() Kind { return KindLength }

func (s *lengthSet) members() []*perm.Perm {
	s.once.Do(func() {
		s.perms = slices.Collect(perm.All(s.n))
	})

	return s.perms
}

func (s *lengthSet) OfLength(k int) ([]*perm.Perm, error) {
	if err := checkLength("OfLength", k); err != nil {
		return nil, err
	}
	if k != s.n {
		return []*perm.Perm{}, nil
	}

	return slices.Clone(s.members()), nil
}

func (s *lengthSet) Contains(p *perm.Perm) (bool, error) {
	if err := checkMember(p); err != nil {
		return false, err
	}

	return p.Len() == s.n, nil
}

func (s *lengthSet) All() iter.Seq[*perm.Perm] { return perm.All(s.n) }

func (s *lengthSet) Counts(maxLen int) []int {
	if maxLen < 0 {
		return nil
	}
	out := make([]int, maxLen+1)
	if s.n <= maxLen {
		out[s.n] = factorial(s.n)
	}

	return out
}
