package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/algorithms"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// epsilonChain builds s0 -eps/2-> s1 -1/3-> s2(final/0), with s1 also
// final at weight 1, over the tropical semiring.
func epsilonChain(t *testing.T) *fst.VectorFst {
	t.Helper()
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(fst.Eps, fst.Eps, semiring.TropicalWeight(2), s1)))
	require.NoError(t, f.AddTr(s1, fst.NewTr(1, 1, semiring.TropicalWeight(3), s2)))
	require.NoError(t, f.SetFinal(s1, semiring.TropicalWeight(1)))
	require.NoError(t, f.SetFinal(s2, semiring.TropicalWeight(0)))
	return f
}

func TestRmEpsilonFoldsTransitionThroughEpsilon(t *testing.T) {
	f := epsilonChain(t)
	lf, err := algorithms.RmEpsilon(f)
	require.NoError(t, err)

	trs := lf.GetTrs(f.Start())
	require.Len(t, trs, 1)
	assert.Equal(t, fst.Label(1), trs[0].ILabel)
	assert.True(t, trs[0].Weight.Equal(semiring.TropicalWeight(5)))

	w, isFinal := lf.FinalWeight(f.Start())
	require.True(t, isFinal)
	assert.True(t, w.Equal(semiring.TropicalWeight(3)))
}

func TestRmEpsilonNoEpsilonsIsIdentity(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(4), s1)))
	require.NoError(t, f.SetFinal(s1, semiring.TropicalWeight(0)))

	lf, err := algorithms.RmEpsilon(f)
	require.NoError(t, err)

	trs := lf.GetTrs(s0)
	require.Len(t, trs, 1)
	assert.True(t, trs[0].Weight.Equal(semiring.TropicalWeight(4)))
}

func TestRmEpsilonRejectsNonIdempotentSemiring(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.LogWeight(1), s1)))
	require.NoError(t, f.SetFinal(s1, semiring.LogWeight(0)))

	_, err := algorithms.RmEpsilon(f)
	assert.ErrorIs(t, err, algorithms.ErrNotIdempotent)
}
