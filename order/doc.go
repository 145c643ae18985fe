// SPDX-License-Identifier: MIT

// Package order defines the strict partial order shared by every item the
// engine can schedule.
//
// Two items are either strictly ordered (one is Before the other) or they are
// Incomparable, which means they overlap and cannot both be kept. There is no
// "equal" outcome, so Relation is a tagged trichotomy and not a -1/0/+1
// comparator.
//
// Key Types:
//
//   - Relation: Incomparable (zero value), Before, After.
//   - Item[T]:  Weight() uint32 + Compare(T) Relation.
//
// Helpers:
//
//   - Chain(items)       reports whether every pair of items is ordered.
//   - TotalWeight(items) sums weights into a uint64 (no overflow for any n
//     that fits in memory).
package order
