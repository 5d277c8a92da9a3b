package fst

import "github.com/katalvlaran/wfst/semiring"

// vectorState holds one state's outgoing transitions and optional final
// weight. Grounded on original_source/rustfst/src/vector_fst/mod.rs's
// VectorFstState: a plain growable slice per state, not a map, so that
// Tr-sort has an ordered sequence to sort in place.
type vectorState struct {
	trs     []Tr
	final   semiring.Weight
	isFinal bool
}

// VectorFst is the concrete, expanded, mutable Fst container (spec
// §4.2). It is the one storage representation this package provides;
// algorithms are written against the Fst/MutableFst interfaces so any
// future alternative representation (e.g. a const, immutable one) can
// drop in unchanged.
//
// VectorFst is not safe for concurrent use (spec §5); share across
// goroutines only behind external synchronization.
type VectorFst struct {
	states  []vectorState
	start   StateId
	props   Properties
	isyms   *SymbolTable
	osyms   *SymbolTable
}

// NewVectorFst returns an empty VectorFst with no start state.
func NewVectorFst() *VectorFst {
	return &VectorFst{start: NoStateId}
}

func (f *VectorFst) Start() StateId { return f.start }

func (f *VectorFst) FinalWeight(s StateId) (semiring.Weight, bool) {
	if !f.validState(s) {
		return nil, false
	}
	st := &f.states[s]
	return st.final, st.isFinal
}

func (f *VectorFst) NumTrs(s StateId) int {
	if !f.validState(s) {
		return 0
	}
	return len(f.states[s].trs)
}

func (f *VectorFst) GetTrs(s StateId) []Tr {
	if !f.validState(s) {
		return nil
	}
	return f.states[s].trs
}

func (f *VectorFst) NumStates() int { return len(f.states) }

func (f *VectorFst) Properties() Properties { return f.props }

func (f *VectorFst) InputSymbols() *SymbolTable  { return f.isyms }
func (f *VectorFst) OutputSymbols() *SymbolTable { return f.osyms }

func (f *VectorFst) SetInputSymbols(st *SymbolTable)  { f.isyms = st }
func (f *VectorFst) SetOutputSymbols(st *SymbolTable) { f.osyms = st }

func (f *VectorFst) SetProperties(p Properties) { f.props = p }

// SetStart designates s as the start state.
func (f *VectorFst) SetStart(s StateId) error {
	if !f.validState(s) {
		return ErrStateOutOfRange
	}
	f.start = s
	f.props = 0
	return nil
}

// AddState appends a new, final-less, transition-less state.
func (f *VectorFst) AddState() StateId {
	f.states = append(f.states, vectorState{})
	return StateId(len(f.states) - 1)
}

// SetFinal marks s final with weight w.
func (f *VectorFst) SetFinal(s StateId, w semiring.Weight) error {
	if !f.validState(s) {
		return ErrStateOutOfRange
	}
	f.states[s].final = w
	f.states[s].isFinal = true
	f.props = 0
	return nil
}

// DeleteFinal clears s's final marking, if any.
func (f *VectorFst) DeleteFinal(s StateId) error {
	if !f.validState(s) {
		return ErrStateOutOfRange
	}
	f.states[s].final = nil
	f.states[s].isFinal = false
	f.props = 0
	return nil
}

// AddTr appends t to s's outgoing list.
func (f *VectorFst) AddTr(s StateId, t Tr) error {
	if !f.validState(s) {
		return ErrStateOutOfRange
	}
	if !f.validState(t.Next) {
		return ErrStateOutOfRange
	}
	f.states[s].trs = append(f.states[s].trs, t)
	f.props = 0
	return nil
}

// SetTrs replaces s's entire outgoing transition list.
func (f *VectorFst) SetTrs(s StateId, trs []Tr) error {
	if !f.validState(s) {
		return ErrStateOutOfRange
	}
	for _, t := range trs {
		if !f.validState(t.Next) {
			return ErrStateOutOfRange
		}
	}
	f.states[s].trs = trs
	f.props = 0
	return nil
}

// DeleteTrs removes the transitions of s at the given indices.
func (f *VectorFst) DeleteTrs(s StateId, indices []int) error {
	if !f.validState(s) {
		return ErrStateOutOfRange
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(f.states[s].trs) {
			return ErrTrIndexOutOfRange
		}
		drop[i] = true
	}
	kept := f.states[s].trs[:0:0]
	for i, t := range f.states[s].trs {
		if !drop[i] {
			kept = append(kept, t)
		}
	}
	f.states[s].trs = kept
	f.props = 0
	return nil
}

// DeleteStates removes every state in ids, renumbering survivors and
// fixing up Tr.Next references and the start state.
func (f *VectorFst) DeleteStates(ids []StateId) error {
	remove := make(map[StateId]bool, len(ids))
	for _, id := range ids {
		if !f.validState(id) {
			return ErrStateOutOfRange
		}
		remove[id] = true
	}
	remap := make(map[StateId]StateId, len(f.states))
	newStates := make([]vectorState, 0, len(f.states))
	for old := StateId(0); int(old) < len(f.states); old++ {
		if remove[old] {
			continue
		}
		remap[old] = StateId(len(newStates))
		newStates = append(newStates, f.states[old])
	}
	for i := range newStates {
		kept := newStates[i].trs[:0:0]
		for _, t := range newStates[i].trs {
			if remove[t.Next] {
				continue
			}
			t.Next = remap[t.Next]
			kept = append(kept, t)
		}
		newStates[i].trs = kept
	}
	f.states = newStates
	if f.start != NoStateId {
		if remove[f.start] {
			f.start = NoStateId
		} else {
			f.start = remap[f.start]
		}
	}
	f.props = 0
	return nil
}

func (f *VectorFst) validState(s StateId) bool {
	return s >= 0 && int(s) < len(f.states)
}

var (
	_ Fst         = (*VectorFst)(nil)
	_ ExpandedFst = (*VectorFst)(nil)
	_ MutableFst  = (*VectorFst)(nil)
)
