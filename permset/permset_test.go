// SPDX-License-Identifier: MIT
package permset_test

import (
	"math"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permav/avoidance"
	"github.com/katalvlaran/permav/basis"
	"github.com/katalvlaran/permav/perm"
	"github.com/katalvlaran/permav/permset"
)

// keys returns the sorted keys of ps, for order-insensitive comparison.
func keys(ps []*perm.Perm) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Key()
	}
	slices.Sort(out)

	return out
}

func TestForBasis_Dispatch(t *testing.T) {
	cases := []struct {
		text string
		want permset.Kind
	}{
		{"", permset.KindAll},
		{"0", permset.KindFinite},
		{"01", permset.KindMonotone},
		{"10", permset.KindMonotone},
		{"012, 0123", permset.KindAvoidance},
		{"120", permset.KindAvoidance},
		{"01_10", permset.KindAvoidance},
	}
	for _, tc := range cases {
		s, err := permset.Parse(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, s.Kind(), tc.text)
	}

	eps, err := permset.ForBasis(basis.Must(basis.New(perm.Empty())))
	require.NoError(t, err)
	assert.Equal(t, permset.KindFinite, eps.Kind())

	_, err = permset.ForBasis(nil)
	require.ErrorIs(t, err, perm.ErrType)
}

// TestSpecialized_MatchGeneric compares every specialized strategy with the
// generic engine for the same basis.
func TestSpecialized_MatchGeneric(t *testing.T) {
	bases := []*basis.Basis{
		basis.Empty(),
		basis.MustParse("0"),
		basis.MustParse("01"),
		basis.MustParse("10"),
		basis.Must(basis.New(perm.Empty())),
	}
	const maxLen = 5
	for _, b := range bases {
		set, err := permset.ForBasis(b)
		require.NoError(t, err)
		generic, err := avoidance.Of(b)
		require.NoError(t, err)

		require.Equal(t, generic.Counts(maxLen), set.Counts(maxLen), "basis %v", b)
		for k := 0; k <= maxLen; k++ {
			lvl, err := generic.OfLength(k)
			require.NoError(t, err)
			got, err := set.OfLength(k)
			require.NoError(t, err)
			require.Equal(t, keys(lvl.Perms()), keys(got), "basis %v length %d", b, k)

			for q := range perm.All(k) {
				want, err := generic.Contains(q)
				require.NoError(t, err)
				in, err := set.Contains(q)
				require.NoError(t, err)
				require.Equal(t, want, in, "basis %v perm %v", b, q)
			}
		}

		var fromSet, fromGeneric []*perm.Perm
		for p := range set.All() {
			if p.Len() > maxLen {
				break
			}
			fromSet = append(fromSet, p)
		}
		for p := range generic.UpTo(maxLen) {
			fromGeneric = append(fromGeneric, p)
		}
		require.Equal(t, keys(fromGeneric), keys(fromSet), "basis %v", b)
	}
}

func TestCounts_SaturateFactorial(t *testing.T) {
	if strconv.IntSize != 64 {
		t.Skip("factorial bounds below assume a 64-bit int")
	}
	all, err := permset.ForBasis(basis.Empty())
	require.NoError(t, err)
	counts := all.Counts(25)
	require.Len(t, counts, 26)
	assert.Equal(t, 2432902008176640000, counts[20])
	for k := 21; k <= 25; k++ {
		assert.Equal(t, math.MaxInt, counts[k], "length %d", k)
	}
	for k := 1; k <= 25; k++ {
		assert.GreaterOrEqual(t, counts[k], counts[k-1], "counts never wrap")
	}

	s, err := permset.ForLength(22)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, s.Counts(22)[22])
}

func TestForLength(t *testing.T) {
	s, err := permset.ForLength(4)
	require.NoError(t, err)
	assert.Equal(t, permset.KindLength, s.Kind())
	assert.Equal(t, []int{0, 0, 0, 0, 24, 0}, s.Counts(5))
	assert.Equal(t, []int{0, 0}, s.Counts(1))

	ps, err := s.OfLength(4)
	require.NoError(t, err)
	assert.Len(t, ps, 24)
	ps, err = s.OfLength(3)
	require.NoError(t, err)
	assert.Empty(t, ps)

	in, err := s.Contains(perm.Decreasing(4))
	require.NoError(t, err)
	assert.True(t, in)
	in, err = s.Contains(perm.Decreasing(3))
	require.NoError(t, err)
	assert.False(t, in)

	assert.Len(t, slices.Collect(s.All()), 24)

	_, err = permset.ForLength(-1)
	require.ErrorIs(t, err, permset.ErrNegativeLength)
	require.ErrorIs(t, err, perm.ErrValue)
}

func TestForPerms(t *testing.T) {
	a := perm.Must(perm.New(1, 0))
	b := perm.Must(perm.New(0, 1, 2))
	s, err := permset.ForPerms(b, a, perm.Must(perm.New(1, 0)), perm.Empty())
	require.NoError(t, err)
	assert.Equal(t, permset.KindFinite, s.Kind())
	assert.Equal(t, []int{1, 0, 1, 1}, s.Counts(3))

	all := slices.Collect(s.All())
	require.Len(t, all, 3)
	assert.Equal(t, []int{0, 2, 3}, []int{all[0].Len(), all[1].Len(), all[2].Len()})

	in, err := s.Contains(perm.Must(perm.New(1, 0)))
	require.NoError(t, err)
	assert.True(t, in)
	in, err = s.Contains(perm.Identity(2))
	require.NoError(t, err)
	assert.False(t, in)

	_, err = s.Contains(nil)
	require.ErrorIs(t, err, perm.ErrType)
	_, err = permset.ForPerms(a, nil)
	require.ErrorIs(t, err, perm.ErrNilPerm)
}

func TestNegativeLength(t *testing.T) {
	for _, text := range []string{"", "0", "01", "120"} {
		s, err := permset.Parse(text)
		require.NoError(t, err)
		_, err = s.OfLength(-2)
		require.ErrorIs(t, err, perm.ErrValue, "basis %q", text)
		assert.Nil(t, s.Counts(-1), "basis %q", text)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "avoidance", permset.KindAvoidance.String())
	assert.Equal(t, "monotone", permset.KindMonotone.String())
	assert.Equal(t, "Kind(42)", permset.Kind(42).String())
}
