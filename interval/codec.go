// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"
)

// FromTriple builds an Interval from (lower, upper, weight) as found in a flat
// buffer. The weight is truncated toward zero and saturated to [0, MaxUint32];
// NaN weights become 0.
func FromTriple(lower, upper, weight float64) Interval {
	return New(lower, upper, TruncateWeight(weight))
}

// TruncateWeight converts a float64 weight to uint32 by truncation toward
// zero, saturating at both ends. NaN maps to 0.
func TruncateWeight(w float64) uint32 {
	switch {
	case math.IsNaN(w), w <= 0:
		return 0
	case w >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(w)
	}
}

// Decode splits flat into consecutive (lower, upper, weight) triples.
// Returns ErrMalformedInput (wrapped with the offending length) when
// len(flat) is not a multiple of TripleSize. An empty buffer yields an empty,
// non-nil slice.
// Complexity: O(n).
func Decode(flat []float64) ([]Interval, error) {
	if len(flat)%TripleSize != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrMalformedInput, len(flat))
	}

	out := make([]Interval, 0, len(flat)/TripleSize)
	for i := 0; i < len(flat); i += TripleSize {
		out = append(out, FromTriple(flat[i], flat[i+1], flat[i+2]))
	}

	return out, nil
}

// AppendTo appends iv's triple to dst and returns the extended slice.
// A degenerate interval encodes as (NaN, NaN, 0) and decodes back to itself.
func (iv Interval) AppendTo(dst []float64) []float64 {
	return append(dst, iv.lower, iv.upper, float64(iv.Weight()))
}

// Encode returns the flat encoding of ivs, TripleSize values per interval.
func Encode(ivs []Interval) []float64 {
	out := make([]float64, 0, len(ivs)*TripleSize)
	for _, iv := range ivs {
		out = iv.AppendTo(out)
	}

	return out
}
