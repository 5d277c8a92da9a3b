package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/compose"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// buildAB builds a single-transition transducer that maps label a to
// label b with the given weight.
func buildAB(t *testing.T, a, b fst.Label, w float64) *fst.VectorFst {
	t.Helper()
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(a, b, semiring.TropicalWeight(w), s1)))
	require.NoError(t, f.SetFinal(s1, semiring.TropicalWeight(0)))
	return f
}

func TestComposeChainsTwoSingleTrTransducers(t *testing.T) {
	t1 := buildAB(t, 1, 2, 1.0)
	t2 := buildAB(t, 2, 3, 2.0)

	lf, err := compose.Compose(t1, t2)
	require.NoError(t, err)

	out := lf.Compute()
	require.Equal(t, 2, out.NumStates())
	trs := out.GetTrs(out.Start())
	require.Len(t, trs, 1)
	assert.Equal(t, fst.Label(1), trs[0].ILabel)
	assert.Equal(t, fst.Label(3), trs[0].OLabel)
	assert.Equal(t, semiring.TropicalWeight(3.0), trs[0].Weight)

	_, isFinal := out.FinalWeight(trs[0].Next)
	assert.True(t, isFinal)
}

func TestComposeRejectsEmptyOperand(t *testing.T) {
	empty := fst.NewVectorFst()
	t2 := buildAB(t, 1, 2, 0)

	_, err := compose.Compose(empty, t2)
	assert.ErrorIs(t, err, compose.ErrEmptyComposition)
}

func TestComposeMismatchedLabelsProducesNoTransitions(t *testing.T) {
	t1 := buildAB(t, 1, 2, 0)
	t2 := buildAB(t, 9, 3, 0)

	lf, err := compose.Compose(t1, t2)
	require.NoError(t, err)

	out := lf.Compute()
	assert.Empty(t, out.GetTrs(out.Start()))
}
