package fst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

func TestVectorFstBasics(t *testing.T) {
	f := fst.NewVectorFst()
	assert.Equal(t, fst.NoStateId, f.Start())

	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(2.5), s1)))
	require.NoError(t, f.SetFinal(s1, semiring.TropicalWeight(0)))

	assert.Equal(t, 1, f.NumTrs(s0))
	w, isFinal := f.FinalWeight(s1)
	require.True(t, isFinal)
	assert.Equal(t, semiring.TropicalWeight(0), w)

	_, isFinal = f.FinalWeight(s0)
	assert.False(t, isFinal)
}

func TestVectorFstOutOfRangeErrors(t *testing.T) {
	f := fst.NewVectorFst()
	require.ErrorIs(t, f.SetStart(5), fst.ErrStateOutOfRange)
	require.ErrorIs(t, f.SetFinal(5, semiring.TropicalWeight(0)), fst.ErrStateOutOfRange)
	require.ErrorIs(t, f.AddTr(5, fst.Tr{}), fst.ErrStateOutOfRange)
}

func TestVectorFstDeleteTrs(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(1), s1)))
	require.NoError(t, f.AddTr(s0, fst.NewTr(2, 2, semiring.TropicalWeight(2), s1)))
	require.NoError(t, f.AddTr(s0, fst.NewTr(3, 3, semiring.TropicalWeight(3), s1)))

	require.NoError(t, f.DeleteTrs(s0, []int{1}))
	trs := f.GetTrs(s0)
	require.Len(t, trs, 2)
	assert.Equal(t, fst.Label(1), trs[0].ILabel)
	assert.Equal(t, fst.Label(3), trs[1].ILabel)

	require.ErrorIs(t, f.DeleteTrs(s0, []int{99}), fst.ErrTrIndexOutOfRange)
}

func TestVectorFstDeleteStatesRenumbersAndFixesTargets(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddTr(s0, fst.NewTr(1, 1, semiring.TropicalWeight(1), s1)))
	require.NoError(t, f.AddTr(s0, fst.NewTr(2, 2, semiring.TropicalWeight(1), s2)))
	require.NoError(t, f.SetFinal(s2, semiring.TropicalWeight(0)))

	require.NoError(t, f.DeleteStates([]fst.StateId{s1}))

	require.Equal(t, 2, f.NumStates())
	assert.Equal(t, fst.StateId(0), f.Start())
	trs := f.GetTrs(0)
	require.Len(t, trs, 1)
	assert.Equal(t, fst.StateId(1), trs[0].Next)

	_, isFinal := f.FinalWeight(1)
	assert.True(t, isFinal)
}

func TestVectorFstDeleteStatesCanClearStart(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.DeleteStates([]fst.StateId{s0}))
	assert.Equal(t, fst.NoStateId, f.Start())
}

func TestVectorFstSymbolTables(t *testing.T) {
	f := fst.NewVectorFst()
	isyms := fst.NewSymbolTable()
	a := isyms.AddSymbol("a")
	f.SetInputSymbols(isyms)

	require.NotNil(t, f.InputSymbols())
	sym, err := f.InputSymbols().String(a)
	require.NoError(t, err)
	assert.Equal(t, "a", sym)
	assert.Nil(t, f.OutputSymbols())
}
