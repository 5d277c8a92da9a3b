package fst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

func TestTrEpsilonPredicates(t *testing.T) {
	full := fst.NewTr(fst.Eps, fst.Eps, semiring.TropicalWeight(0), 0)
	assert.True(t, full.IsEpsilonInput())
	assert.True(t, full.IsEpsilonOutput())
	assert.True(t, full.IsEpsilon())

	inOnly := fst.NewTr(fst.Eps, 3, semiring.TropicalWeight(0), 0)
	assert.True(t, inOnly.IsEpsilonInput())
	assert.False(t, inOnly.IsEpsilonOutput())
	assert.False(t, inOnly.IsEpsilon())
}

func TestTrLessOrdersByILabelThenOLabelThenNext(t *testing.T) {
	a := fst.NewTr(1, 1, semiring.TropicalWeight(0), 5)
	b := fst.NewTr(1, 2, semiring.TropicalWeight(0), 0)
	c := fst.NewTr(2, 0, semiring.TropicalWeight(0), 0)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Less(c))
}

func TestTrSameKeyIgnoresWeight(t *testing.T) {
	a := fst.NewTr(1, 2, semiring.TropicalWeight(1), 3)
	b := fst.NewTr(1, 2, semiring.TropicalWeight(99), 3)
	c := fst.NewTr(1, 2, semiring.TropicalWeight(1), 4)

	assert.True(t, a.SameKey(b))
	assert.False(t, a.SameKey(c))
}
