// Package lazy provides the on-demand Fst wrapper spec.md's "L3c: lazy
// evaluation" layer needs: a state is expanded by a caller-supplied Op
// the first time it is visited, and the result is memoized in a Cache so
// later visits are O(1). Grounded on
// original_source/rustfst/src/algorithms/rm_epsilon/rm_epsilon_fst.rs
// and factor_weight/factor_weight_fst.rs, both of which are literally
// "LazyFst2<W, SomeOp, SimpleHashMapCache>" — this package generalizes
// that pairing into one reusable Fst type instead of one per algorithm.
//
// Expanding a state is a side effect triggered by a read-only-looking
// call (GetTrs). The Cache's map is mutex-protected, but lazy.Fst as a
// whole is not safe for concurrent use: the cache lookup and Op.Expand
// are not done under one lock, so two goroutines visiting the same
// unexpanded state may each run Op.Expand, and the Ops in this module
// keep unsynchronized state of their own. Share a lazy.Fst across
// goroutines only behind external synchronization.
package lazy
