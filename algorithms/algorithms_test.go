package algorithms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/algorithms"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// linearFst builds s0 -a/1-> s1 -b/1-> s2(final), plus an unreachable s3,
// over the tropical semiring.
func linearFst(t *testing.T) *fst.VectorFst {
	t.Helper()
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	f.AddState() // s3, unreachable

	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(1), s1)))
	require.NoError(t, f.AddTr(s1, fst.NewTr(2, 2, semiring.TropicalWeight(1), s2)))
	require.NoError(t, f.SetFinal(s2, semiring.TropicalWeight(0)))
	return f
}

func TestConnectRemovesUnreachableState(t *testing.T) {
	f := linearFst(t)
	require.Equal(t, 4, f.NumStates())

	require.NoError(t, algorithms.Connect(f))
	assert.Equal(t, 3, f.NumStates())
}

func TestTopSortOrdersLinearChain(t *testing.T) {
	f := linearFst(t)
	require.NoError(t, algorithms.Connect(f))

	order, err := algorithms.TopSort(f)
	require.NoError(t, err)
	require.Len(t, order, 3)
	assert.Equal(t, f.Start(), order[0])
}

func TestTopSortDetectsCycle(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(1), s1)))
	require.NoError(t, f.AddTr(s1, fst.NewTr(1, 1, semiring.TropicalWeight(1), s0)))

	_, err := algorithms.TopSort(f)
	assert.ErrorIs(t, err, algorithms.ErrCycleDetected)
}

func TestShortestDistanceAccumulatesTropicalMin(t *testing.T) {
	f := linearFst(t)
	require.NoError(t, algorithms.Connect(f))

	d, err := algorithms.ShortestDistance(f)
	require.NoError(t, err)
	require.Len(t, d, 3)

	want := []semiring.Weight{
		semiring.TropicalWeight(0),
		semiring.TropicalWeight(1),
		semiring.TropicalWeight(2),
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("shortest distances mismatch (-want +got):\n%s", diff)
	}
}

func TestTrUniqueCollapsesDuplicateKeys(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(1), s1)))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(5), s1)))
	require.NoError(t, f.AddTr(s0, fst.NewTr(2, 2, semiring.TropicalWeight(1), s1)))

	require.NoError(t, algorithms.TrUnique(f))
	assert.Len(t, f.GetTrs(s0), 2)
}

func TestTrSortOrdersByILabel(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.AddTr(s0, fst.NewTr(3, 0, semiring.TropicalWeight(1), s1)))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 0, semiring.TropicalWeight(1), s1)))

	require.NoError(t, algorithms.TrSort(f, algorithms.SortByILabel))
	trs := f.GetTrs(s0)
	assert.Equal(t, fst.Label(1), trs[0].ILabel)
	assert.Equal(t, fst.Label(3), trs[1].ILabel)
	assert.True(t, f.Properties().Has(fst.ILabelSorted))
}

func TestProjectInputMakesAcceptor(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 2, semiring.TropicalWeight(1), s1)))

	require.NoError(t, algorithms.Project(f, algorithms.ProjectInput))
	assert.Equal(t, fst.Label(1), f.GetTrs(s0)[0].OLabel)
}

func TestMinimizeMergesEquivalentFinalStates(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(0), s1)))
	require.NoError(t, f.AddTr(s0, fst.NewTr(2, 2, semiring.TropicalWeight(0), s2)))
	require.NoError(t, f.SetFinal(s1, semiring.TropicalWeight(0)))
	require.NoError(t, f.SetFinal(s2, semiring.TropicalWeight(0)))
	f.SetProperties(fst.Acceptor)

	require.NoError(t, algorithms.Minimize(f))
	assert.Equal(t, 2, f.NumStates())
}
