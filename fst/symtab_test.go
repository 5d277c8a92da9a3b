package fst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
)

func TestSymbolTableEpsPreregistered(t *testing.T) {
	st := fst.NewSymbolTable()
	sym, err := st.String(fst.Eps)
	require.NoError(t, err)
	assert.Equal(t, "<eps>", sym)
}

func TestSymbolTableAddSymbolIsIdempotent(t *testing.T) {
	st := fst.NewSymbolTable()
	a1 := st.AddSymbol("a")
	a2 := st.AddSymbol("a")
	assert.Equal(t, a1, a2)

	b := st.AddSymbol("b")
	assert.NotEqual(t, a1, b)
}

func TestSymbolTableFind(t *testing.T) {
	st := fst.NewSymbolTable()
	st.AddSymbol("a")

	l, ok := st.Find("a")
	require.True(t, ok)
	assert.Equal(t, "a", mustString(t, st, l))

	_, ok = st.Find("missing")
	assert.False(t, ok)
}

func TestSymbolTableStringOutOfRange(t *testing.T) {
	st := fst.NewSymbolTable()
	_, err := st.String(999)
	require.Error(t, err)
}

func mustString(t *testing.T, st *fst.SymbolTable, l fst.Label) string {
	t.Helper()
	s, err := st.String(l)
	require.NoError(t, err)
	return s
}
