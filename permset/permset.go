// SPDX-License-Identifier: MIT
// Package: permav/permset
//
// permset.go — Kind, the Set interface and the factory functions.

package permset

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/permav/avoidance"
	"github.com/katalvlaran/permav/basis"
	"github.com/katalvlaran/permav/perm"
)

// ErrNegativeLength indicates a negative permutation length.
var ErrNegativeLength = fmt.Errorf("%w: permset: negative length", perm.ErrValue)

// Kind names the strategy behind a Set.
type Kind int

const (
	KindAvoidance Kind = iota // generic lazily grown avoidance class
	KindMonotone              // a single monotone permutation per length
	KindAll                   // every permutation
	KindFinite                // explicit finite collection
	KindLength                // every permutation of one length
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindAvoidance:
		return "avoidance"
	case KindMonotone:
		return "monotone"
	case KindAll:
		return "all"
	case KindFinite:
		return "finite"
	case KindLength:
		return "length"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Set is a set of permutations that can be queried length by length.
type Set interface {
	// Kind reports the strategy selected at construction.
	Kind() Kind

	// OfLength returns the members of length k. The slice is the caller's.
	OfLength(k int) ([]*perm.Perm, error)

	// Contains reports membership; a nil p is perm.ErrType.
	Contains(p *perm.Perm) (bool, error)

	// All yields members by non-decreasing length; it is infinite unless
	// the set is finite.
	All() iter.Seq[*perm.Perm]

	// Counts returns the number of members of each length 0..maxLen.
	// Counts too large for an int saturate at math.MaxInt.
	Counts(maxLen int) []int
}

// ForBasis returns the set of permutations avoiding b.
//
// Errors: avoidance.ErrNilBasis (perm.ErrType) for a nil basis.
func ForBasis(b *basis.Basis) (Set, error) {
	if b == nil {
		return nil, fmt.Errorf("permset: ForBasis: %w", avoidance.ErrNilBasis)
	}

	switch {
	case b.Len() == 0:
		return allSet{}, nil
	case b.Len() == 1 && b.At(0).Len() == 0:
		return newFinite(nil), nil
	case b.Len() == 1 && b.At(0).Len() == 1:
		return newFinite([]*perm.Perm{perm.Empty()}), nil
	case b.Len() == 1 && b.At(0).Len() == 2:
		return monotoneSet{decreasing: b.At(0).IsIncreasing()}, nil
	}

	c, err := avoidance.Of(b)
	if err != nil {
		return nil, err
	}

	return avoidSet{class: c}, nil
}

// Parse reads a textual basis (see basis.Parse) and calls ForBasis.
func Parse(text string) (Set, error) {
	b, err := basis.Parse(text)
	if err != nil {
		return nil, err
	}

	return ForBasis(b)
}

// ForLength returns the set of all permutations of length n.
//
// Errors: ErrNegativeLength (perm.ErrValue) for n < 0.
func ForLength(n int) (Set, error) {
	if n < 0 {
		return nil, fmt.Errorf("permset: ForLength(%d): %w", n, ErrNegativeLength)
	}

	return &lengthSet{n: n}, nil
}

// ForPerms returns the finite set holding exactly ps (duplicates collapse).
//
// Errors: perm.ErrNilPerm (perm.ErrType) for a nil element.
func ForPerms(ps ...*perm.Perm) (Set, error) {
	for i, p := range ps {
		if p == nil {
			return nil, fmt.Errorf("permset: ForPerms: element %d: %w", i, perm.ErrNilPerm)
		}
	}

	return newFinite(ps), nil
}

// checkLength validates a queried length.
func checkLength(op string, k int) error {
	if k < 0 {
		return fmt.Errorf("permset: %s(%d): %w", op, k, ErrNegativeLength)
	}

	return nil
}

// checkMember validates a membership argument.
func checkMember(p *perm.Perm) error {
	if p == nil {
		return fmt.Errorf("permset: Contains: %w", perm.ErrNilPerm)
	}

	return nil
}
