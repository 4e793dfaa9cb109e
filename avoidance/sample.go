// SPDX-License-Identifier: MIT
// Package: permav/avoidance
//
// sample.go — functional options and batch sampling.
//
// Contract:
//   • Option constructors panic on meaningless input (nil rng); Sample
//     itself never panics.
//   • Determinism is explicit: pass WithSeed or WithRand for reproducible draws.

package avoidance

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/permav/perm"
)

// SampleOption customizes Sample.
type SampleOption func(*sampleConfig)

type sampleConfig struct {
	rng      *rand.Rand
	distinct bool
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) SampleOption {
	if r == nil {
		panic("avoidance: WithRand(nil)")
	}
	return func(c *sampleConfig) {
		c.rng = r
	}
}

// WithSeed draws from a new source seeded with seed.
func WithSeed(seed int64) SampleOption {
	return func(c *sampleConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDistinct samples without replacement.
func WithDistinct() SampleOption {
	return func(c *sampleConfig) {
		c.distinct = true
	}
}

// Sample returns count members of length k, drawn uniformly. Without
// WithDistinct draws are independent and may repeat.
//
// Errors: ErrIndex for negative k or count, or count larger than the level
// under WithDistinct; ErrEmptyLevel when the level has no members and
// count > 0.
func (c *Class) Sample(k, count int, opts ...SampleOption) ([]*perm.Perm, error) {
	// 1. Resolve options.
	cfg := sampleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 2. Validate against the level.
	if count < 0 {
		return nil, fmt.Errorf("avoidance: Sample(%d, %d): %w", k, count, ErrIndex)
	}
	lvl, err := c.OfLength(k)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []*perm.Perm{}, nil
	}
	if lvl.Len() == 0 {
		return nil, fmt.Errorf("avoidance: Sample(%d, %d): %w", k, count, ErrEmptyLevel)
	}
	if cfg.distinct && count > lvl.Len() {
		return nil, fmt.Errorf("avoidance: Sample(%d, %d) from %d members: %w", k, count, lvl.Len(), ErrIndex)
	}

	// 3. Draw.
	out := make([]*perm.Perm, count)
	if cfg.distinct {
		for i, idx := range cfg.rng.Perm(lvl.Len())[:count] {
			out[i] = lvl.At(idx)
		}
		return out, nil
	}
	for i := range out {
		out[i] = lvl.At(cfg.rng.Intn(lvl.Len()))
	}

	return out, nil
}
