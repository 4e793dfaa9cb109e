// SPDX-License-Identifier: MIT
// Package: permav/basis
//
// errors.go — sentinel errors. Both are of kind perm.ErrType, so callers can
// classify basis and permutation failures with the same errors.Is check.

package basis

import (
	"fmt"

	"github.com/katalvlaran/permav/perm"
)

var (
	// ErrNotPattern indicates a nil pattern in a basis construction.
	ErrNotPattern = fmt.Errorf("%w: basis: not a pattern", perm.ErrType)

	// ErrNotIterable indicates FromAny input that is neither a pattern nor a
	// collection of patterns.
	ErrNotIterable = fmt.Errorf("%w: basis: not a pattern collection", perm.ErrType)
)
