// SPDX-License-Identifier: MIT
// Package: permav/avoidance
//
// errors.go — sentinel errors. Kinds are shared with package perm.

package avoidance

import (
	"fmt"

	"github.com/katalvlaran/permav/perm"
)

var (
	// ErrNilBasis indicates that Of was called with a nil basis.
	ErrNilBasis = fmt.Errorf("%w: avoidance: basis is nil", perm.ErrType)

	// ErrNeedRand indicates that Random was called without a random source.
	ErrNeedRand = fmt.Errorf("%w: avoidance: rng is required", perm.ErrType)

	// ErrIndex indicates a negative length or index, or an index past the
	// end of a finite class.
	ErrIndex = fmt.Errorf("%w: avoidance: index out of range", perm.ErrValue)

	// ErrEmptyLevel indicates sampling from a level with no members.
	ErrEmptyLevel = fmt.Errorf("%w: avoidance: level is empty", perm.ErrValue)
)
