// SPDX-License-Identifier: MIT

package selection

import "github.com/katalvlaran/nooverlap/interval"

// Filter keeps the heaviest non-overlapping subset of items, where accessor
// maps each item to its interval (for example a chart label to the angular
// span it covers). Retained items come back in input order.
// A nil Selector uses the package defaults.
//
// Complexity: as the configured strategy, plus O(n) encode/decode.
func Filter[T any](s *Selector, items []T, accessor func(T) interval.Interval) []T {
	if s == nil {
		s = defaultSelector
	}

	flat := make([]float64, 0, len(items)*interval.TripleSize)
	for _, it := range items {
		flat = accessor(it).AppendTo(flat)
	}

	keep := make([]byte, len(items))
	if err := s.RemoveOverlapping(flat, keep); err != nil {
		// lengths are consistent by construction
		return nil
	}

	out := make([]T, 0, len(items))
	for _, i := range DecodeMask(keep) {
		out = append(out, items[i])
	}

	return out
}
