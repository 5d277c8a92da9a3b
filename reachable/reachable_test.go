package reachable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/reachable"
	"github.com/katalvlaran/wfst/semiring"
)

func buildChain(t *testing.T) *fst.VectorFst {
	t.Helper()
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(0), s1)))
	require.NoError(t, f.AddTr(s1, fst.NewTr(2, 2, semiring.TropicalWeight(0), s2)))
	require.NoError(t, f.SetFinal(s2, semiring.TropicalWeight(0)))
	return f
}

func TestIntervalSetMergesAdjacent(t *testing.T) {
	var is reachable.IntervalSet
	is.Add(1, 3)
	is.Add(3, 5)
	is.Add(10, 12)

	assert.Equal(t, 2, is.Size())
	assert.True(t, is.Contains(2))
	assert.True(t, is.Contains(4))
	assert.False(t, is.Contains(7))
	assert.True(t, is.Contains(11))
}

func TestStateReachableFindsPredecessorsOfTarget(t *testing.T) {
	f := buildChain(t)
	sr := reachable.BuildStateReachable(f, []fst.StateId{2})

	assert.True(t, sr.Reachable(0))
	assert.True(t, sr.Reachable(1))
	assert.True(t, sr.Reachable(2))
}

func TestLabelReachableBuildsOnceAndCaches(t *testing.T) {
	f := buildChain(t)
	lr := reachable.NewLabelReachable()

	d1 := lr.Data(f, true)
	d2 := lr.Data(f, true)
	assert.Same(t, d1, d2)

	idx1 := d1.Relabel(1)
	idx2 := d1.Relabel(1)
	assert.Equal(t, idx1, idx2)

	assert.Equal(t, fst.Eps, d1.Relabel(fst.Eps))
}

func TestLabelReachableDataReachLabelAndFinal(t *testing.T) {
	f := buildChain(t)
	lr := reachable.NewLabelReachable()
	d := lr.Data(f, true)

	assert.True(t, d.ReachLabel(0, 1))
	assert.False(t, d.ReachLabel(0, 2))
	assert.True(t, d.ReachLabel(0, fst.Eps))
	assert.True(t, d.ReachFinal(2))
	assert.False(t, d.ReachFinal(0))
}

func TestLabelReachableDataRelabelPairsAvoidsCollisions(t *testing.T) {
	f := buildChain(t)
	lr := reachable.NewLabelReachable()
	d := lr.Data(f, true)

	pairs := d.RelabelPairs(false)
	assert.Len(t, pairs, 2)
	assert.NotContains(t, pairs, fst.NoLabel)

	withCollisions := d.RelabelPairs(true)
	sink := fst.Label(len(d.Label2Index) + 1)
	for label := fst.Label(1); label <= fst.Label(len(d.Label2Index)); label++ {
		if _, seen := pairs[label]; !seen {
			assert.Equal(t, sink, withCollisions[label])
		}
	}
}
