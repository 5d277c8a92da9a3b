package lazy

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Op expands a single state on demand. Implementations are the
// algorithm-specific piece of a lazy Fst (compose.Compose,
// algorithms.RmEpsilon, algorithms.FactorWeight); Fst is the shared
// delivery mechanism around all of them.
type Op interface {
	// Start returns the result Fst's start state.
	Start() fst.StateId

	// Expand computes s's outgoing transitions and final weight. From a
	// single goroutine it is called once per state while that state stays
	// cached; a state evicted from a bounded Cache is expanded again on
	// its next visit.
	Expand(s fst.StateId) (trs []fst.Tr, final semiring.Weight, isFinal bool, err error)

	// Properties returns whatever properties the op can assert about its
	// result without a full scan (compose's op asserts none and returns 0;
	// RmEpsilon and FactorWeight pass their source's bits through).
	Properties() fst.Properties
}

// Fst is a read-only fst.Fst whose states are computed by an Op on first
// visit and memoized in a Cache thereafter (spec §4.6). It does not
// implement fst.ExpandedFst: an unvisited region's state count is
// unknown until Compute materializes it.
type Fst struct {
	op     Op
	cache  *Cache
	isyms  *fst.SymbolTable
	osyms  *fst.SymbolTable
}

// NewFst wraps op in a lazily-expanded Fst, with cache entries capped at
// maxCachedStates (0 = unbounded).
func NewFst(op Op, maxCachedStates int) *Fst {
	return &Fst{op: op, cache: NewCache(maxCachedStates)}
}

func (f *Fst) Start() fst.StateId { return f.op.Start() }

func (f *Fst) ensure(s fst.StateId) *cachedState {
	if st, ok := f.cache.get(s); ok {
		return st
	}
	trs, final, isFinal, err := f.op.Expand(s)
	st := &cachedState{trs: trs, final: final, isFinal: isFinal, expanded: err == nil}
	f.cache.put(s, st)
	return st
}

func (f *Fst) FinalWeight(s fst.StateId) (semiring.Weight, bool) {
	st := f.ensure(s)
	return st.final, st.isFinal
}

func (f *Fst) NumTrs(s fst.StateId) int { return len(f.ensure(s).trs) }

func (f *Fst) GetTrs(s fst.StateId) []fst.Tr { return f.ensure(s).trs }

func (f *Fst) Properties() fst.Properties { return f.op.Properties() }

func (f *Fst) InputSymbols() *fst.SymbolTable  { return f.isyms }
func (f *Fst) OutputSymbols() *fst.SymbolTable { return f.osyms }

func (f *Fst) SetInputSymbols(st *fst.SymbolTable)  { f.isyms = st }
func (f *Fst) SetOutputSymbols(st *fst.SymbolTable) { f.osyms = st }

// Compute eagerly expands every state reachable from Start and copies
// the result into a fresh, fully materialized fst.VectorFst — the
// caller-facing "I'm done being lazy, give me a concrete Fst" escape
// hatch spec §4.6 requires every lazy Fst variant to offer.
func (f *Fst) Compute() *fst.VectorFst {
	out := fst.NewVectorFst()
	idOf := make(map[fst.StateId]fst.StateId)
	var order []fst.StateId

	resolve := func(s fst.StateId) fst.StateId {
		if id, ok := idOf[s]; ok {
			return id
		}
		id := out.AddState()
		idOf[s] = id
		order = append(order, s)
		return id
	}

	start := f.Start()
	if start == fst.NoStateId {
		return out
	}
	_ = out.SetStart(resolve(start))

	for i := 0; i < len(order); i++ {
		s := order[i]
		for _, t := range f.GetTrs(s) {
			nt := t
			nt.Next = resolve(t.Next)
			_ = out.AddTr(idOf[s], nt)
		}
		if w, isFinal := f.FinalWeight(s); isFinal {
			_ = out.SetFinal(idOf[s], w)
		}
	}
	out.SetProperties(f.Properties())
	return out
}

var _ fst.Fst = (*Fst)(nil)
