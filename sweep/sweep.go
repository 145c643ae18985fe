// SPDX-License-Identifier: MIT

package sweep

import (
	"sort"

	"github.com/katalvlaran/nooverlap/interval"
)

// Solve returns the selected input indices in chain order (earliest first)
// and their total weight.
func Solve(ivs []interval.Interval) (path []int, total uint64) {
	// 1) candidates
	idx := make([]int, 0, len(ivs))
	for i, iv := range ivs {
		if !iv.IsDegenerate() {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return []int{}, 0
	}

	// 2) sort by upper bound
	sort.Slice(idx, func(a, b int) bool {
		x, y := ivs[idx[a]], ivs[idx[b]]
		if x.Upper() != y.Upper() {
			return x.Upper() < y.Upper()
		}
		if x.Lower() != y.Lower() {
			return x.Lower() < y.Lower()
		}

		return idx[a] < idx[b]
	})

	m := len(idx)
	best := make([]uint64, m+1)
	prev := make([]int, m)
	take := make([]bool, m)

	// 3) + 4) DP over the sorted prefix
	for k := 0; k < m; k++ {
		lower := ivs[idx[k]].Lower()
		prev[k] = sort.Search(k, func(j int) bool {
			return ivs[idx[j]].Upper() > lower
		})
		with := uint64(ivs[idx[k]].Weight()) + best[prev[k]]
		if with > best[k] {
			best[k+1] = with
			take[k] = true
		} else {
			best[k+1] = best[k]
		}
	}

	// 5) walk back
	path = make([]int, 0, m)
	for k := m; k > 0; {
		if take[k-1] {
			path = append(path, idx[k-1])
			k = prev[k-1]
		} else {
			k--
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, best[m]
}
