// SPDX-License-Identifier: MIT

// Package precedence turns a sequence of order.Items into the DAG solved by
// the longest-path engine.
//
// Layout (arena + index, no pointers between nodes):
//
//	id 0        virtual source, weight 0, no predecessors
//	id 1..n     one node per item; node k stands for item k-1
//	id n+1      virtual sink, weight 0, predecessors = every item node
//
// Item node i has predecessors {source} ∪ {j+1 : item[j] Before item[i-1]}.
// The source edge guarantees every node is reachable; the sink aggregates the
// best distance over all item nodes into one terminal value.
//
// Predecessor sets are ascending []int slices, never maps, so consumers that
// scan them (the DP tie-break) see the same order on every run.
//
// Complexity:
//
//   - Build: Time O(n²) comparisons, Memory O(n + E) with E ≤ n(n-1)/2 + 2n.
package precedence
