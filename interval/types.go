// SPDX-License-Identifier: MIT

package interval

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nooverlap/order"
)

// TripleSize is the number of float64 values encoding one Interval
// in a flat buffer: lower, upper, weight.
const TripleSize = 3

// ErrMalformedInput indicates a flat buffer whose length is not a multiple of TripleSize.
var ErrMalformedInput = errors.New("interval: flat input length is not a multiple of 3")

// Interval is a closed range with a weight. Build values with New or
// FromTriple. The zero value has lower == upper and is therefore degenerate.
type Interval struct {
	lower  float64
	upper  float64
	weight uint32
}

// compile-time check: Interval is an order.Item.
var _ order.Item[Interval] = Interval{}

// New returns a normalized Interval.
// Complexity: O(1).
func New(lower, upper float64, weight uint32) Interval {
	switch {
	case lower < upper:
		return Interval{lower: lower, upper: upper, weight: weight}
	case lower > upper:
		return Interval{lower: upper, upper: lower, weight: weight}
	default:
		// equal bounds, or at least one NaN
		return Degenerate()
	}
}

// Degenerate returns the canonical degenerate interval: NaN bounds, weight 0.
func Degenerate() Interval {
	return Interval{lower: math.NaN(), upper: math.NaN(), weight: 0}
}

// Lower returns the lower bound (NaN for a degenerate interval).
func (iv Interval) Lower() float64 { return iv.lower }

// Upper returns the upper bound (NaN for a degenerate interval).
func (iv Interval) Upper() float64 { return iv.upper }

// Weight returns the stored weight; 0 for a degenerate interval.
func (iv Interval) Weight() uint32 {
	if iv.IsDegenerate() {
		return 0
	}

	return iv.weight
}

// IsDegenerate reports whether iv lacks a strictly ordered pair of bounds:
// NaN bounds, zero width, or the zero value.
func (iv Interval) IsDegenerate() bool {
	return !(iv.lower < iv.upper)
}

// Compare reports how iv relates to other. A degenerate operand is
// Incomparable with everything, itself included.
func (iv Interval) Compare(other Interval) order.Relation {
	if iv.IsDegenerate() || other.IsDegenerate() {
		return order.Incomparable
	}
	if iv.upper <= other.lower {
		return order.Before
	}
	if other.upper <= iv.lower {
		return order.After
	}

	return order.Incomparable
}

// String implements fmt.Stringer, e.g. "[0, 2]w1".
func (iv Interval) String() string {
	if iv.IsDegenerate() {
		return "[degenerate]w0"
	}

	return fmt.Sprintf("[%g, %g]w%d", iv.lower, iv.upper, iv.weight)
}
