package fst

import "github.com/katalvlaran/wfst/semiring"

// Fst is the read-only contract every algorithm package consumes (spec
// §4.2). It deliberately says nothing about storage: a lazy composition
// result (lazy.Fst) and a fully materialized VectorFst both satisfy it.
type Fst interface {
	// Start returns the start state, or NoStateId if none is set.
	Start() StateId

	// FinalWeight returns s's final weight and whether s is final at all.
	// A state with no final weight is not an accepting state; callers must
	// not confuse "final weight equals Zero()" with "not final" — they are
	// distinct per spec §3 (a Zero() final weight is still an explicit,
	// albeit unreachable-in-any-successful-path, final marking).
	FinalWeight(s StateId) (w semiring.Weight, isFinal bool)

	// NumTrs returns the number of outgoing transitions of s.
	NumTrs(s StateId) int

	// GetTrs returns s's outgoing transitions. Implementations may return
	// a live slice; callers must not mutate it.
	GetTrs(s StateId) []Tr

	// Properties returns the advisory bitset currently known to hold.
	Properties() Properties

	// InputSymbols and OutputSymbols return the Fst's associated symbol
	// tables, or nil if none were attached (spec §6: symbol tables are an
	// optional external collaborator, shared by reference).
	InputSymbols() *SymbolTable
	OutputSymbols() *SymbolTable
}

// ExpandedFst is an Fst whose full state set is known and densely
// numbered in [0, NumStates()) — i.e. materialized rather than generated
// on demand (spec §4.2).
type ExpandedFst interface {
	Fst

	// NumStates returns the number of states, O(1).
	NumStates() int
}

// MutableFst is an ExpandedFst that supports in-place editing (spec
// §4.2). Every mutation invalidates previously-known Properties. Nothing
// in this module re-derives the full set by scanning; only the
// algorithms that establish a property (Connect, TrSort, TopSort, ...)
// set its bit again.
type MutableFst interface {
	ExpandedFst

	// SetStart designates s as the start state. s must already exist.
	SetStart(s StateId) error

	// AddState appends a new state with no transitions and no final
	// weight, returning its id.
	AddState() StateId

	// SetFinal marks s final with weight w.
	SetFinal(s StateId, w semiring.Weight) error

	// DeleteFinal clears s's final marking, if any.
	DeleteFinal(s StateId) error

	// AddTr appends a transition to s's outgoing list.
	AddTr(s StateId, t Tr) error

	// DeleteTrs removes the transitions of s at the given indices. indices
	// need not be sorted; duplicates are ignored.
	DeleteTrs(s StateId, indices []int) error

	// SetTrs replaces s's entire outgoing transition list.
	SetTrs(s StateId, trs []Tr) error

	// DeleteStates removes every state whose id is in ids, renumbering the
	// remaining states to stay dense and fixing up every Tr.Next and the
	// start state accordingly. A state's final weight and transitions are
	// dropped along with it.
	DeleteStates(ids []StateId) error

	// SetInputSymbols and SetOutputSymbols attach (or clear, with nil) a
	// symbol table.
	SetInputSymbols(st *SymbolTable)
	SetOutputSymbols(st *SymbolTable)

	// SetProperties overwrites the advisory bitset. Algorithms that prove
	// properties as a side effect of a pass (e.g. Connect knows the result
	// is Accessible+Coaccessible) use this to avoid a redundant rescan.
	SetProperties(p Properties)
}
