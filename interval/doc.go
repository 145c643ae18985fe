// SPDX-License-Identifier: MIT

// Package interval defines Interval, the concrete weighted item scheduled by
// the engine: a closed range [lower, upper] on the real line plus a uint32
// weight.
//
// Normalization (applied by New, never fails):
//
//   - lower > upper          → bounds are swapped.
//   - lower < upper          → kept as is.
//   - lower == upper or NaN  → the canonical degenerate interval
//     {lower: NaN, upper: NaN, weight: 0}.
//
// Zero-width intervals are degenerate because two coincident points would
// each compare Before the other, which breaks antisymmetry. The same holds
// for any value that skipped New, the zero Interval included: without
// lower < upper it weighs 0 and is Incomparable with everything.
//
// Order:
//
//	A Before B ⇔ A.upper <= B.lower
//	A After  B ⇔ B.upper <= A.lower
//	otherwise Incomparable (true overlap, or a degenerate operand).
//
// Touching endpoints ([0,2] and [2,4]) are ordered, not overlapping.
//
// Errors:
//
//   - ErrMalformedInput  flat buffer length is not a multiple of TripleSize.
package interval
