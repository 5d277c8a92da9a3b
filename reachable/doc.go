// Package reachable implements the two reachability precomputations
// spec.md's "L3b: reachability and matching" layer uses to make lazy
// composition efficient: StateReachable (can state s reach any state in
// a target set at all?) and LabelReachable (which labels out of s can
// possibly lead toward a match, represented as a compact interval set
// over a relabeled alphabet).
//
// Grounded on original_source/rustfst/src/algorithms/compose/
// label_reachable.rs and its sibling state_reachable.rs: the relabeling
// step that remaps the label alphabet to small contiguous integers so
// reachability over a range of labels collapses to a numeric interval
// test, and the build-once-per-Fst discipline around the result.
package reachable
