// SPDX-License-Identifier: MIT

// Package sweep solves weighted interval scheduling for interval.Interval
// values in O(n log n), without building the precedence DAG.
//
// Algorithm:
//
//  1. Drop degenerate intervals (they are Incomparable with everything and
//     weigh 0, so they can never improve a selection).
//  2. Sort the rest by upper bound (ties: lower bound, then input index).
//  3. For the k-th interval, binary-search how many earlier intervals end at
//     or before its lower bound: p(k). Touching endpoints count as
//     compatible, exactly like interval.Compare.
//  4. best[k+1] = max(best[k], w(k) + best[p(k)]), taking k only on a strict
//     improvement.
//  5. Walk the take flags back from the end.
//
// The total weight always equals the DAG engine's. When several subsets
// reach the same total the two engines may return different ones; sweep
// never keeps a zero-weight interval.
//
// Complexity:
//
//   - Time:   O(n log n)
//   - Memory: O(n)
package sweep
