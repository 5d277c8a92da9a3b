package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/lazy"
	"github.com/katalvlaran/wfst/semiring"
)

// doublingOp generates an infinite chain 0 -> 1 -> 2 -> ... where state
// n is final iff n == 3, used to exercise on-demand expansion and the
// call-once guarantee.
type doublingOp struct {
	expandCalls map[fst.StateId]int
}

func newDoublingOp() *doublingOp { return &doublingOp{expandCalls: map[fst.StateId]int{}} }

func (o *doublingOp) Start() fst.StateId { return 0 }

func (o *doublingOp) Expand(s fst.StateId) ([]fst.Tr, semiring.Weight, bool, error) {
	o.expandCalls[s]++
	if s >= 3 {
		return nil, semiring.TropicalWeight(0), true, nil
	}
	return []fst.Tr{fst.NewTr(1, 1, semiring.TropicalWeight(1), s+1)}, nil, false, nil
}

func (o *doublingOp) Properties() fst.Properties { return 0 }

func TestLazyFstExpandsOnce(t *testing.T) {
	op := newDoublingOp()
	f := lazy.NewFst(op, 0)

	_ = f.GetTrs(0)
	_ = f.GetTrs(0)
	_ = f.GetTrs(1)

	assert.Equal(t, 1, op.expandCalls[0])
	assert.Equal(t, 1, op.expandCalls[1])
}

func TestLazyFstComputeMaterializes(t *testing.T) {
	op := newDoublingOp()
	f := lazy.NewFst(op, 0)

	out := f.Compute()
	require.Equal(t, 4, out.NumStates())
	w, isFinal := out.FinalWeight(out.Start() + 3)
	require.True(t, isFinal)
	assert.Equal(t, semiring.TropicalWeight(0), w)
}
