// SPDX-License-Identifier: MIT

// Package longestpath finds the maximum-weight source→sink path in a
// precedence.Graph and maps it back to item indices.
//
// Node weights (not edge weights) accumulate along the path. Because every
// item node hangs off the source and feeds the sink, the heaviest path is the
// heaviest chain of pairwise-ordered items.
//
// Algorithm (classic DAG DP):
//
//  1. Obtain a topological order (topo.Sort), unless the caller supplies one.
//  2. Walk it front to back; predecessors are final when a node is reached.
//     source: Distance = 0, Via = NoNode.
//     other:  p* = argmax Distance over predecessors, lowest id on ties;
//     Distance = p*.Distance + Weight, Via = p*.
//  3. Follow Via from the sink back to the source, dropping both sentinels,
//     translate node k to item k-1, reverse.
//
// Shortcuts in Solve (taken before any sorting):
//
//   - 0 items → empty path.
//   - 1 item  → that item, whatever its weight.
//
// Distances are uint64; a sum of uint32 weights cannot overflow for any
// realistic n.
//
// Complexity:
//
//   - Time:   O((V + E) log V) for the sort, O(V + E) for the DP.
//   - Memory: O(V + E).
package longestpath
