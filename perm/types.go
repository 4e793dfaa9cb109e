// SPDX-License-Identifier: MIT
// Package: permav/perm
//
// types.go — the Perm type, the process-wide validation toggle, and the
// read-only accessors (length, elements, equality, ordering, keys).

package perm

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
)

// Perm is an immutable permutation of {0..n-1} in one-line notation.
//
// The zero value is not meaningful; obtain instances from a constructor.
// Two Perms are equal iff they have the same length and sequence.
type Perm struct {
	// seq[i] is the image of i. Never mutated after construction.
	seq []int

	// bounds is the left-floor/left-ceiling table used when this Perm is the
	// pattern of an occurrence search. Filled lazily, published atomically.
	bounds atomic.Pointer[boundTable]
}

// validation controls whether constructors check their input.
// Enabled by default; disable with SetValidation(false) for trusted bulk input.
var validation atomic.Bool

func init() {
	validation.Store(true)
}

// SetValidation enables or disables input validation in every constructor,
// process-wide. With validation disabled the caller guarantees that input
// is a permutation; results on invalid input are undefined.
func SetValidation(enabled bool) {
	validation.Store(enabled)
}

// ValidationEnabled reports the current process-wide validation mode.
func ValidationEnabled() bool {
	return validation.Load()
}

// empty is the shared permutation of length zero.
var empty = &Perm{seq: []int{}}

// Empty returns the permutation of length zero.
func Empty() *Perm { return empty }

// fromOwned wraps seq without copying or validating. Callers transfer
// ownership of seq.
func fromOwned(seq []int) *Perm {
	if len(seq) == 0 {
		return empty
	}

	return &Perm{seq: seq}
}

// validate checks that seq is a bijection on {0..len(seq)-1}.
// Complexity: O(n) time, O(n/64) words of space.
func validate(op string, seq []int) error {
	n := len(seq)
	seen := bitset.New(uint(n))
	for i, v := range seq {
		if v < 0 || v >= n {
			return fmt.Errorf("perm: %s: element %d at position %d: %w", op, v, i, ErrOutOfRange)
		}
		if seen.Test(uint(v)) {
			return fmt.Errorf("perm: %s: element %d at position %d: %w", op, v, i, ErrDuplicate)
		}
		seen.Set(uint(v))
	}

	return nil
}

// checked validates seq when validation is enabled and wraps it.
func checked(op string, seq []int) (*Perm, error) {
	if validation.Load() {
		if err := validate(op, seq); err != nil {
			return nil, err
		}
	}

	return fromOwned(seq), nil
}

// Len returns the length of p.
func (p *Perm) Len() int { return len(p.seq) }

// At returns the image of position i. It panics if i is out of range,
// like indexing a slice.
func (p *Perm) At(i int) int { return p.seq[i] }

// Slice returns a copy of the one-line notation of p.
func (p *Perm) Slice() []int { return slices.Clone(p.seq) }

// Values returns the elements of p in positional order without copying.
// Callers must not modify the result.
func (p *Perm) Values() []int { return p.seq }

// Equal reports whether p and q have the same length and sequence.
// A nil Perm equals only another nil Perm.
func (p *Perm) Equal(q *Perm) bool {
	if p == nil || q == nil {
		return p == q
	}

	return slices.Equal(p.seq, q.seq)
}

// Compare orders permutations by length first, then lexicographically.
// Returns -1, 0 or +1.
func (p *Perm) Compare(q *Perm) int {
	if len(p.seq) != len(q.seq) {
		if len(p.seq) < len(q.seq) {
			return -1
		}

		return 1
	}

	return slices.Compare(p.seq, q.seq)
}

// Key returns a compact canonical encoding of p, suitable as a map key.
// Distinct permutations have distinct keys.
func (p *Perm) Key() string {
	buf := make([]byte, 0, len(p.seq)+1)
	for _, v := range p.seq {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// String renders p as a parenthesized tuple, e.g. "(2, 0, 1)".
func (p *Perm) String() string {
	if p == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p.seq {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Digits renders p as its digit string when every value fits one digit,
// e.g. "530421"; longer permutations fall back to comma-separated values.
func (p *Perm) Digits() string {
	if len(p.seq) > 10 {
		parts := make([]string, len(p.seq))
		for i, v := range p.seq {
			parts[i] = strconv.Itoa(v)
		}

		return strings.Join(parts, ",")
	}
	buf := make([]byte, len(p.seq))
	for i, v := range p.seq {
		buf[i] = byte('0' + v)
	}

	return string(buf)
}
