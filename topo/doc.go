// SPDX-License-Identifier: MIT

// Package topo computes a topological order of a dependency relation given
// as predecessor sets, using Kahn's algorithm.
//
// Sort returns every node id 0..n-1 so that each id appears after all of its
// predecessors. When several nodes are ready at once, the lowest id is
// emitted first; the result is therefore a pure function of the input.
//
// If the relation contains a cycle (self-loops included), ErrCycleDetected is
// returned. For a graph built by package precedence this cannot happen, but
// the solver still reports it rather than looping or panicking.
//
// Complexity:
//
//   - Time:   O((V + E) log V)  (min-heap of ready ids)
//   - Memory: O(V + E)          (in-degree table + successor lists)
package topo
