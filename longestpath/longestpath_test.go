package longestpath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nooverlap/internal/bruteforce"
	"github.com/katalvlaran/nooverlap/interval"
	"github.com/katalvlaran/nooverlap/longestpath"
	"github.com/katalvlaran/nooverlap/order"
	"github.com/katalvlaran/nooverlap/precedence"
	"github.com/katalvlaran/nooverlap/topo"
)

func iv(lo, hi float64, w uint32) interval.Interval { return interval.New(lo, hi, w) }

func solve(t *testing.T, ivs ...interval.Interval) longestpath.Result {
	t.Helper()
	res, err := longestpath.Solve(precedence.Build(ivs))
	require.NoError(t, err)

	return res
}

// ------------------------------------------------------------------------
// 1. Shortcuts and validation
// ------------------------------------------------------------------------

func TestSolve_NilGraph(t *testing.T) {
	_, err := longestpath.Solve(nil)
	assert.ErrorIs(t, err, longestpath.ErrNilGraph)

	_, err = longestpath.Along(nil, nil)
	assert.ErrorIs(t, err, longestpath.ErrNilGraph)
}

func TestSolve_Empty(t *testing.T) {
	res := solve(t)
	assert.NotNil(t, res.Path)
	assert.Empty(t, res.Path)
	assert.Equal(t, uint64(0), res.Total)
}

// TestSolve_SingleZeroWeight: a lone item is kept even with weight 0.
func TestSolve_SingleZeroWeight(t *testing.T) {
	res := solve(t, iv(0, 1, 0))
	assert.Equal(t, []int{0}, res.Path)
	assert.Equal(t, uint64(0), res.Total)
}

// TestSolve_SingleDegenerate: the shortcut applies to degenerate input too.
func TestSolve_SingleDegenerate(t *testing.T) {
	res := solve(t, interval.Degenerate())
	assert.Equal(t, []int{0}, res.Path)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestSolve_NonOverlapping(t *testing.T) {
	res := solve(t, iv(0, 2, 1), iv(2, 4, 1), iv(4, 6, 1), iv(6, 8, 1))
	assert.Equal(t, []int{0, 1, 2, 3}, res.Path)
	assert.Equal(t, uint64(4), res.Total)
}

func TestSolve_SimpleOverlapping(t *testing.T) {
	res := solve(t, iv(0, 2, 1), iv(1, 3, 1), iv(2, 4, 1), iv(3, 5, 1), iv(4, 6, 1))
	assert.Equal(t, []int{0, 2, 4}, res.Path)
	assert.Equal(t, uint64(3), res.Total)
}

func TestSolve_SimpleWeighted(t *testing.T) {
	res := solve(t, iv(0, 2, 1), iv(1, 3, 10), iv(2, 4, 1))
	assert.Equal(t, []int{1}, res.Path)
	assert.Equal(t, uint64(10), res.Total)
}

// TestSolve_PathInChainOrder: input listed right to left, path comes back
// earliest interval first.
func TestSolve_PathInChainOrder(t *testing.T) {
	res := solve(t, iv(6, 8, 1), iv(4, 6, 1), iv(2, 4, 1), iv(0, 2, 1))
	assert.Equal(t, []int{3, 2, 1, 0}, res.Path)
}

// TestSolve_TieBreakLowestID: two disjoint single-item optima with equal
// weight; the sink must pick the lower node id.
func TestSolve_TieBreakLowestID(t *testing.T) {
	res := solve(t, iv(0, 3, 5), iv(1, 4, 5))
	assert.Equal(t, []int{0}, res.Path)

	res = solve(t, iv(1, 4, 5), iv(0, 3, 5))
	assert.Equal(t, []int{0}, res.Path)
}

// TestSolve_DegenerateNeverBlocks: a NaN interval between two compatible
// ones does not stop both from being chosen.
func TestSolve_DegenerateNeverBlocks(t *testing.T) {
	res := solve(t, iv(0, 1, 3), interval.Degenerate(), iv(1, 2, 4))
	assert.Equal(t, []int{0, 2}, res.Path)
	assert.Equal(t, uint64(7), res.Total)
}

func TestSolve_NoOverflow(t *testing.T) {
	heavy := ^uint32(0)
	res := solve(t, iv(0, 1, heavy), iv(1, 2, heavy), iv(2, 3, heavy))
	assert.Equal(t, 3*uint64(heavy), res.Total)
}

// ------------------------------------------------------------------------
// 3. Along with caller-supplied orders
// ------------------------------------------------------------------------

func TestAlong_MatchesSolve(t *testing.T) {
	g := precedence.Build([]interval.Interval{iv(0, 2, 1), iv(1, 3, 1), iv(2, 4, 1)})
	ord, err := topo.Sort(g.Len(), g.Predecessors)
	require.NoError(t, err)

	res, err := longestpath.Along(g, ord)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res.Path)

	// solving twice on the same graph gives the same answer
	again, err := longestpath.Along(g, ord)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestAlong_RejectsBadOrders(t *testing.T) {
	g := precedence.Build([]interval.Interval{iv(0, 2, 1), iv(2, 4, 1)})

	_, err := longestpath.Along(g, []int{0, 1})
	assert.ErrorIs(t, err, longestpath.ErrOrderMismatch, "too short")

	_, err = longestpath.Along(g, []int{0, 1, 1, 3})
	assert.ErrorIs(t, err, longestpath.ErrOrderMismatch, "duplicate")

	_, err = longestpath.Along(g, []int{0, 1, 2, 9})
	assert.ErrorIs(t, err, longestpath.ErrOrderMismatch, "unknown id")

	_, err = longestpath.Along(g, []int{0, 2, 1, 3})
	assert.ErrorIs(t, err, longestpath.ErrOrderMismatch, "2 depends on 1")
}

// ------------------------------------------------------------------------
// 4. Cycles reported, not hidden
// ------------------------------------------------------------------------

// clash violates antisymmetry on purpose: everything is Before everything.
type clash struct{ w uint32 }

func (c clash) Weight() uint32               { return c.w }
func (c clash) Compare(clash) order.Relation { return order.Before }

func TestSolve_CycleDetected(t *testing.T) {
	g := precedence.Build([]clash{{1}, {2}})
	_, err := longestpath.Solve(g)
	assert.ErrorIs(t, err, topo.ErrCycleDetected)
}

// ------------------------------------------------------------------------
// 5. Properties against the exhaustive reference
// ------------------------------------------------------------------------

func TestSolve_NoOverlapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		ivs := bruteforce.RandomIntervals(rng, 1+rng.Intn(40))
		res := solve(t, ivs...)
		kept := bruteforce.Pick(ivs, res.Path)
		assert.Truef(t, order.Chain(kept), "round %d: overlapping selection %v", round, kept)
		assert.Equal(t, order.TotalWeight(kept), res.Total)
	}
}

func TestSolve_OptimalProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	// sizes 0..16, each at least three times
	for round := 0; round < 60; round++ {
		ivs := bruteforce.RandomIntervals(rng, round%17)
		res := solve(t, ivs...)
		want := bruteforce.Best(ivs)
		if len(ivs) == 1 {
			want = uint64(ivs[0].Weight())
		}
		assert.Equalf(t, want, res.Total, "round %d: %v", round, ivs)
	}
}
