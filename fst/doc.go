// Package fst defines the abstract contract for weighted finite-state
// transducers that every algorithm in algorithms/, reachable/, matcher/,
// lazy/ and compose/ is written against (spec.md §4.2, "L2: FST model").
//
// Fst is the read-only view (start state, final weights, transition
// iteration, properties). MutableFst extends it with in-place state and
// transition edits. ExpandedFst additionally guarantees num_states() is
// O(1) and states are densely numbered — the property every concrete,
// materialized (non-lazy) FST satisfies.
//
// VectorFst is the one concrete, expanded, mutable container this package
// provides: a growable per-state slice of transitions, matching
// original_source/rustfst/src/vector_fst/mod.rs's representation rather
// than a map, so that Tr-sort's "stable sort" invariant (spec §4.2) has
// somewhere to act. Const-backed, memory-mapped, or on-disk containers are
// explicitly out of scope (spec §1) beyond this mutation/traversal
// contract.
//
// FSTs are not internally synchronized (spec §5: "Single-threaded by
// design... FSTs are not internally synchronized"); callers that share an
// Fst across goroutines must add their own locking.
package fst
