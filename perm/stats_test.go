// SPDX-License-Identifier: MIT
package perm_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permav/perm"
)

func TestStatistics(t *testing.T) {
	p := perm.Must(perm.New(5, 3, 0, 4, 2, 1))
	assert.Equal(t, 11, p.Inversions())
	assert.Equal(t, []int{0, 1, 3, 4}, p.Descents())
	assert.Equal(t, []int{2}, p.Ascents())
	assert.Nil(t, p.FixedPoints())
	assert.Equal(t, []int{0, 1, 2}, perm.Identity(3).FixedPoints())
	assert.Equal(t, 0, perm.Identity(4).Inversions())
	assert.Equal(t, 6, perm.Decreasing(4).Inversions())
}

func TestCyclesOrder(t *testing.T) {
	p := perm.Must(perm.New(1, 2, 0, 4, 3, 5))
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}, {5}}, p.Cycles())
	assert.Equal(t, 6, p.Order())
	assert.Equal(t, 1, perm.Empty().Order())

	// p^order is the identity.
	pow := perm.Identity(p.Len())
	for i := 0; i < p.Order(); i++ {
		var err error
		pow, err = pow.Compose(p)
		require.NoError(t, err)
	}
	assert.True(t, pow.IsIdentity())
}

func TestAll_Lexicographic(t *testing.T) {
	all := slices.Collect(perm.All(4))
	require.Len(t, all, 24)
	for i := 1; i < len(all); i++ {
		require.Equal(t, -1, all[i-1].Compare(all[i]))
	}
	assert.Len(t, slices.Collect(perm.All(0)), 1)
	assert.Empty(t, slices.Collect(perm.All(-1)))
}

func TestRankUnrank(t *testing.T) {
	r := 0
	for p := range perm.All(5) {
		got, err := p.Rank()
		require.NoError(t, err)
		require.Equal(t, r, got)

		back, err := perm.Unrank(5, r)
		require.NoError(t, err)
		require.True(t, back.Equal(p))
		r++
	}

	_, err := perm.Unrank(3, 6)
	assert.ErrorIs(t, err, perm.ErrIndex)
	_, err = perm.Identity(21).Rank()
	assert.ErrorIs(t, err, perm.ErrValue)
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 10; n++ {
		p := perm.Random(n, rng)
		_, err := perm.New(p.Slice()...)
		require.NoError(t, err)
		require.Equal(t, n, p.Len())
	}
}
