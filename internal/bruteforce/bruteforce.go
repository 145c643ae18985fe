// SPDX-License-Identifier: MIT

// Package bruteforce is the exhaustive reference solver used by property
// tests across the module. It enumerates all 2^n subsets, so keep n small.
package bruteforce

import (
	"math/rand"

	"github.com/katalvlaran/nooverlap/interval"
	"github.com/katalvlaran/nooverlap/order"
)

// MaxItems bounds the input size Best accepts.
const MaxItems = 20

// Best returns the maximum total weight of any pairwise-ordered subset of
// items. It panics if len(items) > MaxItems.
func Best[T order.Item[T]](items []T) uint64 {
	n := len(items)
	if n > MaxItems {
		panic("bruteforce: too many items")
	}

	// compatible[i] has bit j set when items i and j are ordered
	compatible := make([]uint32, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && items[i].Compare(items[j]).Ordered() {
				compatible[i] |= 1 << uint(j)
			}
		}
	}

	var best uint64
	for mask := uint32(0); mask < 1<<uint(n); mask++ {
		var sum uint64
		ok := true
		for i := 0; i < n && ok; i++ {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			others := mask &^ (1 << uint(i))
			if others&^compatible[i] != 0 {
				ok = false
			}
			sum += uint64(items[i].Weight())
		}
		if ok && sum > best {
			best = sum
		}
	}

	return best
}

// RandomIntervals draws n intervals with integer bounds, lower in [0, 64),
// length in [1, 32], and weight in [1, 256].
func RandomIntervals(rng *rand.Rand, n int) []interval.Interval {
	out := make([]interval.Interval, n)
	for i := range out {
		lo := float64(rng.Intn(64))
		size := float64(1 + rng.Intn(32))
		w := uint32(1 + rng.Intn(256))
		out[i] = interval.New(lo, lo+size, w)
	}

	return out
}

// Pick returns items[idx] for each idx.
func Pick[T any](items []T, idx []int) []T {
	out := make([]T, len(idx))
	for k, i := range idx {
		out[k] = items[i]
	}

	return out
}
