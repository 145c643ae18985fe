// SPDX-License-Identifier: MIT

// Package selection is the façade over the engine: it takes a flat buffer of
// (lower, upper, weight) triples, picks the heaviest non-overlapping subset
// and writes a selection mask (255 = kept, 0 = dropped).
//
// Pipeline:
//
//	[]float64 → interval.Decode → strategy → indices → mask
//
// Strategies:
//
//   - StrategyGraph (default): precedence DAG + topological sort + DP.
//   - StrategySweep: O(n log n) sort and binary search (sweep package).
//
// Both strategies return the same total weight; the 0- and 1-interval
// shortcuts run before either of them.
//
// Errors:
//
//   - interval.ErrMalformedInput  input length is not a multiple of 3.
//   - ErrBufferMismatch           output length != number of intervals.
//   - ErrUnknownStrategy          ParseStrategy got an unsupported name.
//
// A cycle in the precedence relation (only possible with a broken
// order.Item) never surfaces as an error: the selection is empty, a warning
// is logged and the Observer is told.
package selection
