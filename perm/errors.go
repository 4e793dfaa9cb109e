// SPDX-License-Identifier: MIT
// Package: permav/perm
//
// errors.go — sentinel errors for the perm package.
//
// Error policy:
//   • Two kinds: ErrType and ErrValue. Every specific sentinel wraps exactly
//     one of them, so errors.Is(err, ErrValue) classifies any failure.
//   • Call sites attach the operation name with fmt.Errorf("perm: Op: %w", ErrX).
//   • Nothing in this package panics on user input, except Must.

package perm

import (
	"errors"
	"fmt"
)

var (
	// ErrType is the kind of every failure caused by a value of the wrong type:
	// a non-integer element, or a nil *Perm where a permutation is required.
	ErrType = errors.New("perm: type error")

	// ErrValue is the kind of every failure caused by a well-typed but
	// invalid value.
	ErrValue = errors.New("perm: value error")
)

var (
	// ErrNotInteger indicates that an element supplied to FromAny is not an integer.
	ErrNotInteger = fmt.Errorf("%w: element is not an integer", ErrType)

	// ErrNilPerm indicates that a nil *Perm was passed to a combinator.
	ErrNilPerm = fmt.Errorf("%w: not a permutation", ErrType)

	// ErrOutOfRange indicates an element outside [0,n).
	ErrOutOfRange = fmt.Errorf("%w: element out of range", ErrValue)

	// ErrDuplicate indicates an element that occurs more than once.
	ErrDuplicate = fmt.Errorf("%w: duplicate element", ErrValue)

	// ErrLengthMismatch indicates composition of permutations of different lengths.
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrValue)

	// ErrIndex indicates an insertion/removal index or value outside its range.
	ErrIndex = fmt.Errorf("%w: index out of range", ErrValue)

	// ErrDigits indicates an integer whose digits do not form a permutation.
	ErrDigits = fmt.Errorf("%w: digits do not form a permutation", ErrValue)

	// ErrSyntax indicates text that cannot be read as a permutation.
	ErrSyntax = fmt.Errorf("%w: invalid syntax", ErrValue)
)
