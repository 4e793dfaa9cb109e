// SPDX-License-Identifier: MIT
// Package: permav/avoidance
//
// registry.go — the process-wide basis → Class memo.

package avoidance

import (
	"fmt"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/permav/basis"
)

// registry maps basis keys to their shared Class. Entries are created on
// first request and live for the rest of the process.
var registry = cmap.New[*Class]()

// Of returns the shared Class of b, creating it on first request.
// Concurrent first requests for equal bases receive the same instance.
//
// Errors: ErrNilBasis (perm.ErrType) for a nil basis.
func Of(b *basis.Basis) (*Class, error) {
	if b == nil {
		return nil, fmt.Errorf("avoidance: Of: %w", ErrNilBasis)
	}
	key := b.Key()

	// 1. Common case: already registered.
	if c, ok := registry.Get(key); ok {
		return c, nil
	}

	// 2. Insert-if-absent under the shard lock.
	created := false
	c := registry.Upsert(key, nil, func(exist bool, inMap, _ *Class) *Class {
		if exist {
			return inMap
		}
		created = true
		return newClass(b)
	})
	if created {
		classesCached.Inc()
		log().Debug("avoidance: class registered", zap.Stringer("basis", b))
	}

	return c, nil
}

// MustOf is Of for bases known to be non-nil; it panics on error.
func MustOf(b *basis.Basis) *Class {
	c, err := Of(b)
	if err != nil {
		panic(err)
	}

	return c
}

// Cached returns the number of registered classes.
func Cached() int {
	return registry.Count()
}
