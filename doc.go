// Package nooverlap picks, from a list of weighted intervals on the real line,
// the heaviest subset whose members never overlap.
//
// 🚀 What is nooverlap?
//
//	A small, deterministic engine for weighted interval scheduling, built as a
//	reduction to a longest path in a DAG:
//		• order/       : Before / After / Incomparable trichotomy + Item contract
//		• interval/    : closed [lower, upper] ranges with a weight, flat codec
//		• precedence/  : DAG with virtual source & sink, one node per item
//		• topo/        : Kahn's topological sort with lowest-id-first ready queue
//		• longestpath/ : DP over the topological order + backpointer walk
//		• sweep/       : O(n log n) sort-and-binary-search alternative
//		• selection/   : flat buffer in, 0/255 mask out
//
// Outer layers (config/, metrics/, server/, cmd/nooverlap) host the engine as a
// CLI and an HTTP service; the engine itself keeps no state between calls.
//
// Quick ASCII example:
//
//	[0,2]  [2,4]  [4,6]        touching endpoints are ordered, so all three
//	├──┤   ├──┤   ├──┤         are kept: mask = 255 255 255
//	   [1,3]                   overlaps [0,2] and [2,4]: dropped unless heavier
//	   ├──┤
//
//	go get github.com/katalvlaran/nooverlap
package nooverlap
