package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/algorithms"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/matcher"
	"github.com/katalvlaran/wfst/semiring"
)

func sortedFst(t *testing.T) *fst.VectorFst {
	t.Helper()
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.AddTr(s0, fst.NewTr(3, 0, semiring.TropicalWeight(1), s1)))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 0, semiring.TropicalWeight(1), s1)))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 0, semiring.TropicalWeight(2), s1)))
	require.NoError(t, algorithms.TrSort(f, algorithms.SortByILabel))
	return f
}

func TestNewSortedRejectsUnsortedFst(t *testing.T) {
	f := fst.NewVectorFst()
	f.AddState()
	_, err := matcher.NewSorted(f, matcher.MatchInput)
	assert.ErrorIs(t, err, matcher.ErrUnsorted)
}

func TestSortedFindReturnsAllMatchingLabel(t *testing.T) {
	f := sortedFst(t)
	m, err := matcher.NewSorted(f, matcher.MatchInput)
	require.NoError(t, err)

	trs, err := m.Find(0, 1)
	require.NoError(t, err)
	assert.Len(t, trs, 2)

	trs, err = m.Find(0, 2)
	require.NoError(t, err)
	assert.Len(t, trs, 0)
}

func TestRhoSigmaPhiFallsBackToRho(t *testing.T) {
	f := sortedFst(t)
	sorted, err := matcher.NewSorted(f, matcher.MatchInput)
	require.NoError(t, err)

	rsp := matcher.NewRhoSigmaPhi(sorted, matcher.FallbackLabels{
		Rho: 3, Sigma: fst.NoLabel, Phi: fst.NoLabel,
	})

	trs, err := rsp.Find(0, 99)
	require.NoError(t, err)
	require.Len(t, trs, 1)
	assert.Equal(t, fst.Label(3), trs[0].ILabel)
}
