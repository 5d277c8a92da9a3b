// Package compose implements weighted FST composition (spec.md §4.5): T
// = T1 o T2, built lazily on top of lazy.Fst so an arbitrarily large
// composition only ever materializes the states a caller actually
// visits.
//
// The central correctness problem composition has to solve is spurious
// epsilon paths: if both T1 and T2 can independently take epsilon
// transitions, a naive product construction counts the same "real" path
// multiple times, once per interleaving of the two machines' epsilon
// moves. FilterState and the match filter here are the textbook fix
// (Mohri & Pereira's "three-way" composition filter), grounded directly
// on original_source/rustfst/src/algorithms/compose/compose_filters/
// match_compose_filter.rs's FS ∈ {0 (both may move), 1 (only fst1 may),
// 2 (only fst2 may), no-state (path invalid)} automaton.
package compose
