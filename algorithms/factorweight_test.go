package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/algorithms"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// gallicChain builds a single transition s0 -1/(ab,3)-> s1(final/(c,0))
// over GallicLeft/TropicalWeight, where the string component carries
// more than one label so FactorWeight has something to peel.
func gallicChain(t *testing.T) *fst.VectorFst {
	t.Helper()
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))

	trW := semiring.NewGallicWeight(
		semiring.GallicLeft,
		semiring.NewStringWeight(semiring.StringLeft, 10, 20, 30),
		semiring.TropicalWeight(3),
	)
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, trW, s1)))

	finalW := semiring.NewGallicWeight(
		semiring.GallicLeft,
		semiring.NewStringWeight(semiring.StringLeft, 40, 50),
		semiring.TropicalWeight(0),
	)
	require.NoError(t, f.SetFinal(s1, finalW))
	return f
}

func TestFactorWeightPeelsStringOneLabelPerTransition(t *testing.T) {
	f := gallicChain(t)
	lf, err := algorithms.FactorWeight(f, algorithms.GallicFactor{})
	require.NoError(t, err)

	trs := lf.GetTrs(f.Start())
	require.Len(t, trs, 1)
	head, ok := trs[0].Weight.(semiring.GallicWeight)
	require.True(t, ok)
	assert.Equal(t, []int32{10}, head.S.Labels)
	assert.True(t, head.W.Equal(semiring.TropicalWeight(3)))

	// the remaining (20,30) labels live on the synthesized successor,
	// reached by an epsilon continuation transition since s1 itself had
	// no outgoing transitions of its own to carry the residual onto.
	next := trs[0].Next
	nextTrs := lf.GetTrs(next)
	require.Len(t, nextTrs, 1)
	assert.Equal(t, fst.Eps, nextTrs[0].ILabel)
	assert.Equal(t, fst.Eps, nextTrs[0].OLabel)
	contHead, ok := nextTrs[0].Weight.(semiring.GallicWeight)
	require.True(t, ok)
	assert.Equal(t, []int32{20}, contHead.S.Labels)

	_, isFinal := lf.FinalWeight(next)
	require.False(t, isFinal)
}

func TestFactorWeightChainReachesOriginalFinal(t *testing.T) {
	f := gallicChain(t)
	lf, err := algorithms.FactorWeight(f, algorithms.GallicFactor{})
	require.NoError(t, err)

	// walk: s0 -> s1 carrying residual (20,30) -> continuation (30,40,50)
	// -> continuation (40,50) -> continuation (50), final and irreducible
	s := f.Start()
	var last fst.StateId
	for i := 0; i < 8; i++ {
		trs := lf.GetTrs(s)
		if len(trs) == 0 {
			last = s
			break
		}
		s = trs[0].Next
	}
	w, isFinal := lf.FinalWeight(last)
	require.True(t, isFinal)
	fw, ok := w.(semiring.GallicWeight)
	require.True(t, ok)
	assert.LessOrEqual(t, len(fw.S.Labels), 1)
}

func TestGallicFactorStopsAtSingleLabel(t *testing.T) {
	w := semiring.NewGallicWeight(semiring.GallicLeft, semiring.NewStringWeight(semiring.StringLeft, 7), semiring.TropicalWeight(1))
	_, _, ok := algorithms.GallicFactor{}.Factor(w)
	assert.False(t, ok)
}
