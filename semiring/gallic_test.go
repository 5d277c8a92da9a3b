package semiring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/semiring"
)

func TestGallicMinKeepsSmallerWeightWhole(t *testing.T) {
	small := semiring.NewGallicWeight(semiring.GallicMin,
		semiring.NewStringWeight(semiring.StringRestrict, 1), semiring.TropicalWeight(1))
	big := semiring.NewGallicWeight(semiring.GallicMin,
		semiring.NewStringWeight(semiring.StringRestrict, 2), semiring.TropicalWeight(5))

	sum, err := small.Plus(big)
	require.NoError(t, err)
	got := sum.(semiring.GallicWeight)
	require.True(t, got.Equal(small), "Gallic(min) must keep the pair with the smaller weight intact")
}

func TestGallicRestrictCombinesComponentwise(t *testing.T) {
	a := semiring.NewGallicWeight(semiring.GallicRestrict,
		semiring.NewStringWeight(semiring.StringRestrict, 1), semiring.TropicalWeight(2))
	// Equal pair combines to itself under restrict.
	sum, err := a.Plus(a)
	require.NoError(t, err)
	require.True(t, sum.Equal(a))
}

func TestGallicTimesConcatenatesAndMultipliesWeights(t *testing.T) {
	a := semiring.NewGallicWeight(semiring.GallicLeft,
		semiring.NewStringWeight(semiring.StringLeft, 1), semiring.TropicalWeight(2))
	b := semiring.NewGallicWeight(semiring.GallicLeft,
		semiring.NewStringWeight(semiring.StringLeft, 2), semiring.TropicalWeight(3))
	prod, err := a.Times(b)
	require.NoError(t, err)
	got := prod.(semiring.GallicWeight)
	require.Equal(t, []int32{1, 2}, got.S.Labels)
	require.InDelta(t, 5.0, float64(got.W.(semiring.TropicalWeight)), 1e-9)
}

func TestGallicUnionWeightRoundTrips(t *testing.T) {
	p1 := semiring.NewGallicWeight(semiring.GallicRestrict,
		semiring.NewStringWeight(semiring.StringRestrict, 1), semiring.TropicalWeight(1))
	p2 := semiring.NewGallicWeight(semiring.GallicRestrict,
		semiring.NewStringWeight(semiring.StringRestrict, 2), semiring.TropicalWeight(2))
	u := semiring.NewGallicUnionWeight(p1, p2)
	require.Len(t, u.Values, 2)
}
