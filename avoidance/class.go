// SPDX-License-Identifier: MIT
// Package: permav/avoidance
//
// class.go — Class, level extension and the random-access queries.

package avoidance

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/permav/basis"
	"github.com/katalvlaran/permav/perm"
)

// Class is the avoidance class of one basis. Obtain it with Of; every
// caller asking for an equal basis shares the same instance.
type Class struct {
	basis *basis.Basis
	patts []*perm.Perm

	// mu serializes extension; readers never take it.
	mu sync.Mutex

	// levels points to an append-only slice; levels[k] is complete once visible.
	levels atomic.Pointer[[]*Level]
}

// newClass seeds levels[0]: {ε}, or nothing when the basis contains ε.
func newClass(b *basis.Basis) *Class {
	c := &Class{basis: b, patts: b.Patterns()}
	var zero []*perm.Perm
	if b.AvoidedBy(perm.Empty()) {
		zero = []*perm.Perm{perm.Empty()}
	}
	levels := []*Level{newLevel(0, zero)}
	c.levels.Store(&levels)

	return c
}

// Basis returns the canonical basis of the class.
func (c *Class) Basis() *basis.Basis { return c.basis }

// Built returns how many levels are currently cached (lengths 0..Built()-1).
func (c *Class) Built() int { return len(*c.levels.Load()) }

// String renders the class as "Av{012, 210}".
func (c *Class) String() string { return "Av" + c.basis.String() }

// ensureLevel makes sure levels[0..k] exist and returns a snapshot that
// contains them. It is the only mutator of levels.
func (c *Class) ensureLevel(k int) []*Level {
	// 1. Fast path: already built, no lock.
	if levels := *c.levels.Load(); len(levels) > k {
		return levels
	}

	// 2. Slow path: build under the per-class lock, publishing level by level.
	c.mu.Lock()
	defer c.mu.Unlock()

	levels := *c.levels.Load()
	for len(levels) <= k {
		levels = append(levels, c.extend(levels[len(levels)-1]))
		snapshot := levels
		c.levels.Store(&snapshot)
	}

	return levels
}

// extend builds the level after prev by inserting a new maximum at every
// position of every member of prev.
func (c *Class) extend(prev *Level) *Level {
	start := time.Now()
	length := prev.length + 1

	// An empty level stays empty forever.
	if len(prev.perms) == 0 {
		levelsBuilt.Inc()
		return newLevel(length, nil)
	}

	perms := make([]*perm.Perm, 0, len(prev.perms))
	seen := make(map[string]struct{}, len(prev.perms))
	checked := 0
	for _, p := range prev.perms {
		for pos := 0; pos <= p.Len(); pos++ {
			q, err := p.InsertMax(pos)
			if err != nil {
				// Unreachable: pos is within [0, len(p)].
				continue
			}
			checked++
			if !q.Avoids(c.patts...) {
				continue
			}
			key := q.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			perms = append(perms, q)
		}
	}
	lvl := &Level{length: length, perms: perms, index: seen}

	elapsed := time.Since(start)
	levelsBuilt.Inc()
	candidatesChecked.Add(float64(checked))
	levelBuildSeconds.Observe(elapsed.Seconds())
	log().Debug("avoidance: level extended",
		zap.Stringer("basis", c.basis),
		zap.Int("length", length),
		zap.Int("size", len(perms)),
		zap.Int("candidates", checked),
		zap.Duration("elapsed", elapsed),
	)

	return lvl
}

// OfLength returns the members of length k, building levels as needed.
//
// Errors: ErrIndex (perm.ErrValue) for negative k.
func (c *Class) OfLength(k int) (*Level, error) {
	if k < 0 {
		return nil, fmt.Errorf("avoidance: OfLength(%d): %w", k, ErrIndex)
	}

	return c.ensureLevel(k)[k], nil
}

// Contains reports whether q belongs to the class.
//
// Errors: perm.ErrNilPerm (perm.ErrType) for a nil q.
func (c *Class) Contains(q *perm.Perm) (bool, error) {
	if q == nil {
		return false, fmt.Errorf("avoidance: Contains: %w", perm.ErrNilPerm)
	}

	return c.ensureLevel(q.Len())[q.Len()].Contains(q), nil
}

// At returns the idx-th member in breadth-first order: all members of
// length 0, then length 1, and so on, each level in generation order.
//
// Errors: ErrIndex (perm.ErrValue) for negative idx, or idx past the last
// member of a finite class.
func (c *Class) At(idx int) (*perm.Perm, error) {
	if idx < 0 {
		return nil, fmt.Errorf("avoidance: At(%d): %w", idx, ErrIndex)
	}
	rest := idx
	for length := 0; ; length++ {
		lvl := c.ensureLevel(length)[length]
		if lvl.Len() == 0 {
			return nil, fmt.Errorf("avoidance: At(%d): class %v is finite: %w", idx, c, ErrIndex)
		}
		if rest < lvl.Len() {
			return lvl.At(rest), nil
		}
		rest -= lvl.Len()
	}
}

// Counts returns the level sizes for lengths 0..maxLen.
func (c *Class) Counts(maxLen int) []int {
	if maxLen < 0 {
		return nil
	}
	levels := c.ensureLevel(maxLen)
	out := make([]int, maxLen+1)
	for k := range out {
		out[k] = levels[k].Len()
	}

	return out
}

// Random returns a uniformly chosen member of length k.
//
// Errors: ErrNeedRand for a nil rng; ErrIndex for negative k; ErrEmptyLevel
// when the class has no member of length k.
func (c *Class) Random(k int, rng *rand.Rand) (*perm.Perm, error) {
	if rng == nil {
		return nil, fmt.Errorf("avoidance: Random: %w", ErrNeedRand)
	}
	lvl, err := c.OfLength(k)
	if err != nil {
		return nil, err
	}
	if lvl.Len() == 0 {
		return nil, fmt.Errorf("avoidance: Random(%d): %w", k, ErrEmptyLevel)
	}

	return lvl.At(rng.Intn(lvl.Len())), nil
}
