// SPDX-License-Identifier: MIT
// Package: permav/perm
//
// construct.go — constructors: integer sequences, digits of an integer,
// standardization of arbitrary ordered values, one-based input, dynamic
// input and text.

package perm

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// maxDigits is the number of distinct decimal symbols.
const maxDigits = 10

// New returns the permutation with one-line notation seq.
// The input slice is copied.
//
// Errors: ErrOutOfRange, ErrDuplicate (both ErrValue) when validation is on.
// Complexity: O(n).
func New(seq ...int) (*Perm, error) {
	return checked("New", slices.Clone(seq))
}

// Must returns p or panics with err. Intended for literals in tests and
// examples.
func Must(p *Perm, err error) *Perm {
	if err != nil {
		panic(err)
	}

	return p
}

// FromInteger reads the decimal digits of n as a permutation, e.g.
// 1230 → (1, 2, 3, 0). A leading zero cannot be expressed this way; use
// Parse("0123") for such permutations.
//
// Errors: ErrDigits when n is negative, has more than ten digits, or its
// digits do not form {0..d-1}.
func FromInteger(n int) (*Perm, error) {
	// 1. Reject negatives outright; a sign is not a digit.
	if n < 0 {
		return nil, fmt.Errorf("perm: FromInteger(%d): %w", n, ErrDigits)
	}

	// 2. Split into digits, refusing more than ten symbols.
	digits := strconv.Itoa(n)
	if len(digits) > maxDigits {
		return nil, fmt.Errorf("perm: FromInteger(%d): %w", n, ErrDigits)
	}
	seq := make([]int, len(digits))
	for i := range digits {
		seq[i] = int(digits[i] - '0')
	}

	// 3. Digits must themselves be a permutation.
	if validation.Load() {
		if err := validate("FromInteger", seq); err != nil {
			return nil, fmt.Errorf("perm: FromInteger(%d): %w", n, ErrDigits)
		}
	}

	return fromOwned(seq), nil
}

// Standardize returns the permutation formed by the ranks of vals among
// themselves. Equal values are ranked by position, so the result is always
// a permutation: Standardize([]int{7, 2, 7}) == (1, 0, 2).
// Complexity: O(n log n).
func Standardize[T cmp.Ordered](vals []T) *Perm {
	return StandardizeFunc(vals, cmp.Compare[T])
}

// StandardizeFunc is Standardize with a caller supplied three-way comparison.
func StandardizeFunc[T any](vals []T, compare func(a, b T) int) *Perm {
	// 1. Sort positions by value; stable sort breaks ties by position.
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return compare(vals[a], vals[b])
	})

	// 2. The rank of position order[r] is r.
	seq := make([]int, len(vals))
	for r, pos := range order {
		seq[pos] = r
	}

	return fromOwned(seq)
}

// FromOneBased returns the permutation whose one-based notation is seq,
// i.e. every element is decremented by one.
//
// Errors: as New.
func FromOneBased(seq ...int) (*Perm, error) {
	out := make([]int, len(seq))
	for i, v := range seq {
		out[i] = v - 1
	}

	return checked("FromOneBased", out)
}

// FromAny builds a permutation from dynamically typed input, such as
// decoded JSON or YAML. Every element must be of an integer kind.
//
// Errors: ErrNotInteger (ErrType) for a non-integer element; as New otherwise.
func FromAny(vals []any) (*Perm, error) {
	seq := make([]int, len(vals))
	for i, v := range vals {
		x, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("perm: FromAny: position %d (%T): %w", i, v, err)
		}
		seq[i] = x
	}

	return checked("FromAny", seq)
}

// toInt converts any integer kind to int.
func toInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		if x > math.MaxInt || x < math.MinInt {
			return 0, ErrOutOfRange
		}
		return int(x), nil
	case uint:
		if x > math.MaxInt {
			return 0, ErrOutOfRange
		}
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		if x > math.MaxInt {
			return 0, ErrOutOfRange
		}
		return int(x), nil
	default:
		return 0, ErrNotInteger
	}
}

// Parse reads a permutation from text. Two forms are accepted:
//
//	"530421"          a run of single digits, one per element
//	"5,3,0,4,2,1"     integers separated by any non-digit characters
//
// A minus sign belongs to the number it precedes, so "0,-1" is rejected
// rather than read as (0, 1). Blank input yields the empty permutation.
//
// Errors: ErrSyntax for unreadable numbers; ErrOutOfRange for signed
// (negative) elements; as New otherwise.
func Parse(s string) (*Perm, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return empty, nil
	}

	// 1. Pure digit run: one element per digit.
	if strings.IndexFunc(s, func(r rune) bool { return !isDigit(r) }) < 0 {
		seq := make([]int, len(s))
		for i := range s {
			seq[i] = int(s[i] - '0')
		}

		return checked("Parse", seq)
	}

	// 2. Delimited integers; '-' stays attached to its token.
	fields := strings.FieldsFunc(s, func(r rune) bool { return r != '-' && !isDigit(r) })
	seq := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("perm: Parse(%q): token %q: %w", s, f, ErrSyntax)
		}
		if f[0] == '-' {
			return nil, fmt.Errorf("perm: Parse(%q): element %s: %w", s, f, ErrOutOfRange)
		}
		seq[i] = v
	}

	return checked("Parse", seq)
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return r < unicode.MaxASCII && unicode.IsDigit(r)
}

// Identity returns the increasing permutation (0, 1, ..., n-1).
// Negative n yields the empty permutation.
func Identity(n int) *Perm {
	if n <= 0 {
		return empty
	}
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}

	return fromOwned(seq)
}

// Decreasing returns the permutation (n-1, ..., 1, 0).
// Negative n yields the empty permutation.
func Decreasing(n int) *Perm {
	if n <= 0 {
		return empty
	}
	seq := make([]int, n)
	for i := range seq {
		seq[i] = n - 1 - i
	}

	return fromOwned(seq)
}
