package fst

// Label identifies an input or output symbol. Symbol tables (external
// collaborator, spec §6) map strings to Labels; the core only ever sees
// the integers.
type Label int32

const (
	// Eps is the empty-symbol marker (spec §3: "EPS (=0)").
	Eps Label = 0
	// NoLabel is the sentinel meaning "no actual symbol traversed", used
	// by matchers and composition filters (spec §3: "NO_LABEL (=-1)").
	NoLabel Label = -1
)

// StateId identifies a state within a single Fst. IDs are dense in
// [0, NumStates()) for any ExpandedFst (spec §3 invariants).
type StateId int32

// NoStateId is returned by Start() when an Fst has no start state.
const NoStateId StateId = -1
