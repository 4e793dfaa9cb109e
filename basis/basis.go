// SPDX-License-Identifier: MIT
// Package: permav/basis
//
// basis.go — the Basis type and the antichain union.

package basis

import (
	"encoding/binary"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/permav/perm"
)

// Basis is an immutable antichain of patterns, sorted by length and then
// lexicographically. Use Empty, New, Union, FromAny or Parse to build one.
type Basis struct {
	patts []*perm.Perm
	key   string
}

// empty is the shared basis with no patterns.
var empty = &Basis{patts: []*perm.Perm{}}

// Empty returns the basis with no patterns, whose class is every permutation.
func Empty() *Basis { return empty }

// New returns the canonical basis generated by patts: Empty().Union(patts...).
//
// Errors: ErrNotPattern (perm.ErrType) for a nil pattern.
func New(patts ...*perm.Perm) (*Basis, error) {
	return empty.Union(patts...)
}

// Must returns b or panics with err.
func Must(b *Basis, err error) *Basis {
	if err != nil {
		panic(err)
	}

	return b
}

// Union returns the minimal antichain of b's patterns together with patts.
// If patts is empty, or none of them survives pruning, b itself is
// returned, so repeated unions can be cached by reference.
//
// Errors: ErrNotPattern (perm.ErrType) for a nil pattern.
// Complexity: O(m log m + m²·search) for m = b.Len()+len(patts).
func (b *Basis) Union(patts ...*perm.Perm) (*Basis, error) {
	// 1. Input cleaning.
	for i, p := range patts {
		if p == nil {
			return nil, fmt.Errorf("basis: Union: pattern %d: %w", i, ErrNotPattern)
		}
	}
	if len(patts) == 0 {
		return b, nil
	}

	// 2. The empty pattern is contained in everything.
	if b.hasEmpty() {
		return b, nil
	}
	for _, p := range patts {
		if p.Len() == 0 {
			return build([]*perm.Perm{perm.Empty()}), nil
		}
	}

	// 3. Sorted merge, then greedy acceptance.
	merged := make([]*perm.Perm, 0, len(b.patts)+len(patts))
	merged = append(merged, b.patts...)
	merged = append(merged, patts...)
	slices.SortStableFunc(merged, (*perm.Perm).Compare)

	accepted := make([]*perm.Perm, 0, len(merged))
	for _, cand := range merged {
		if cand.Avoids(accepted...) {
			accepted = append(accepted, cand)
		}
	}

	// 4. Identity when nothing new survived.
	if slices.EqualFunc(accepted, b.patts, (*perm.Perm).Equal) {
		return b, nil
	}

	return build(accepted), nil
}

// build wraps an already canonical pattern list.
func build(patts []*perm.Perm) *Basis {
	var buf []byte
	for _, p := range patts {
		buf = binary.AppendUvarint(buf, uint64(p.Len()))
		buf = append(buf, p.Key()...)
	}

	return &Basis{patts: patts, key: string(buf)}
}

// hasEmpty reports whether b is {ε}.
func (b *Basis) hasEmpty() bool {
	return len(b.patts) == 1 && b.patts[0].Len() == 0
}

// FromAny builds a basis from dynamically typed input: a single *perm.Perm
// (wrapped into a one-element set), a []*perm.Perm, an iter.Seq[*perm.Perm]
// or an existing *Basis (returned as is).
//
// Errors: ErrNotIterable (perm.ErrType) for any other input; as New.
func FromAny(v any) (*Basis, error) {
	switch x := v.(type) {
	case *Basis:
		if x == nil {
			return nil, fmt.Errorf("basis: FromAny(nil basis): %w", ErrNotIterable)
		}
		return x, nil
	case *perm.Perm:
		return New(x)
	case []*perm.Perm:
		return New(x...)
	case iter.Seq[*perm.Perm]:
		return New(slices.Collect(x)...)
	default:
		return nil, fmt.Errorf("basis: FromAny(%T): %w", v, ErrNotIterable)
	}
}

// Len returns the number of patterns.
func (b *Basis) Len() int { return len(b.patts) }

// At returns the i-th pattern in canonical order.
func (b *Basis) At(i int) *perm.Perm { return b.patts[i] }

// Patterns returns a copy of the pattern list.
func (b *Basis) Patterns() []*perm.Perm { return slices.Clone(b.patts) }

// All yields the patterns in canonical order.
func (b *Basis) All() iter.Seq[*perm.Perm] { return slices.Values(b.patts) }

// MaxLen returns the length of the longest pattern, or -1 for Empty().
func (b *Basis) MaxLen() int {
	if len(b.patts) == 0 {
		return -1
	}

	return b.patts[len(b.patts)-1].Len()
}

// Key returns a canonical encoding of the basis, equal for equal bases.
func (b *Basis) Key() string { return b.key }

// Equal reports whether a and b hold the same patterns.
func (b *Basis) Equal(other *Basis) bool {
	if b == nil || other == nil {
		return b == other
	}

	return b.key == other.key
}

// AvoidedBy reports whether p avoids every pattern of the basis, i.e.
// whether p belongs to the class the basis generates. A nil p belongs to
// no class.
func (b *Basis) AvoidedBy(p *perm.Perm) bool {
	if p == nil {
		return false
	}

	return p.Avoids(b.patts...)
}

// String renders the basis as "{012, 2103}". Patterns longer than ten use
// comma separated values inside parentheses.
func (b *Basis) String() string {
	parts := make([]string, len(b.patts))
	for i, p := range b.patts {
		switch {
		case p.Len() == 0:
			parts[i] = "ε"
		case p.Len() > 10:
			parts[i] = p.String()
		default:
			parts[i] = p.Digits()
		}
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
