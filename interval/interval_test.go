package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nooverlap/interval"
	"github.com/katalvlaran/nooverlap/order"
)

func TestNew_KeepsOrderedBounds(t *testing.T) {
	iv := interval.New(1, 3, 7)
	assert.Equal(t, 1.0, iv.Lower())
	assert.Equal(t, 3.0, iv.Upper())
	assert.Equal(t, uint32(7), iv.Weight())
	assert.False(t, iv.IsDegenerate())
}

func TestNew_SwapsReversedBounds(t *testing.T) {
	iv := interval.New(5, -1, 2)
	assert.Equal(t, -1.0, iv.Lower())
	assert.Equal(t, 5.0, iv.Upper())
	assert.Equal(t, uint32(2), iv.Weight())
}

func TestNew_NaNIsDegenerate(t *testing.T) {
	cases := [][2]float64{
		{math.NaN(), 1},
		{1, math.NaN()},
		{math.NaN(), math.NaN()},
	}
	for _, c := range cases {
		iv := interval.New(c[0], c[1], 9)
		assert.True(t, iv.IsDegenerate(), "bounds %v", c)
		assert.Equal(t, uint32(0), iv.Weight(), "degenerate weight must be 0")
		assert.True(t, math.IsNaN(iv.Lower()))
		assert.True(t, math.IsNaN(iv.Upper()))
	}
}

func TestNew_ZeroWidthIsDegenerate(t *testing.T) {
	iv := interval.New(2, 2, 5)
	assert.True(t, iv.IsDegenerate())
	assert.Equal(t, uint32(0), iv.Weight())
}

func TestNew_InfiniteBoundsAreValid(t *testing.T) {
	iv := interval.New(math.Inf(-1), math.Inf(1), 1)
	assert.False(t, iv.IsDegenerate())
	assert.Equal(t, order.Incomparable, iv.Compare(interval.New(0, 1, 1)))
}

func TestCompare_Trichotomy(t *testing.T) {
	a := interval.New(0, 2, 1)
	b := interval.New(2, 4, 1) // touches a
	c := interval.New(1, 3, 1) // overlaps both

	assert.Equal(t, order.Before, a.Compare(b), "touching endpoints are ordered")
	assert.Equal(t, order.After, b.Compare(a))
	assert.Equal(t, order.Incomparable, a.Compare(c))
	assert.Equal(t, order.Incomparable, c.Compare(b))
	// an interval overlaps itself
	assert.Equal(t, order.Incomparable, a.Compare(a))
}

func TestCompare_DegenerateIsIncomparableWithEverything(t *testing.T) {
	d := interval.Degenerate()
	for _, other := range []interval.Interval{
		interval.New(0, 1, 1),
		interval.New(-10, -5, 3),
		interval.New(math.Inf(-1), 0, 1),
		d,
	} {
		assert.Equal(t, order.Incomparable, d.Compare(other))
		assert.Equal(t, order.Incomparable, other.Compare(d))
	}
}

// TestZeroValueIsDegenerate: an Interval that skipped New must not order
// against a copy of itself, or two of them would form a cycle.
func TestZeroValueIsDegenerate(t *testing.T) {
	var zero interval.Interval
	assert.True(t, zero.IsDegenerate())
	assert.Equal(t, uint32(0), zero.Weight())
	assert.Equal(t, order.Incomparable, zero.Compare(zero))
	assert.Equal(t, order.Incomparable, zero.Compare(interval.New(1, 2, 5)))
	assert.Equal(t, order.Incomparable, interval.New(-2, -1, 5).Compare(zero))
	assert.Equal(t, "[degenerate]w0", zero.String())
}

func TestTruncateWeight(t *testing.T) {
	assert.Equal(t, uint32(0), interval.TruncateWeight(math.NaN()))
	assert.Equal(t, uint32(0), interval.TruncateWeight(-3.5))
	assert.Equal(t, uint32(0), interval.TruncateWeight(0.99))
	assert.Equal(t, uint32(3), interval.TruncateWeight(3.99))
	assert.Equal(t, uint32(math.MaxUint32), interval.TruncateWeight(1e20))
	assert.Equal(t, uint32(math.MaxUint32), interval.TruncateWeight(math.Inf(1)))
}

func TestDecode(t *testing.T) {
	ivs, err := interval.Decode([]float64{0, 2, 1, 4, 3, 10.7})
	require.NoError(t, err)
	require.Len(t, ivs, 2)
	assert.Equal(t, interval.New(0, 2, 1), ivs[0])
	assert.Equal(t, interval.New(3, 4, 10), ivs[1])
}

func TestDecode_Empty(t *testing.T) {
	ivs, err := interval.Decode(nil)
	require.NoError(t, err)
	assert.NotNil(t, ivs)
	assert.Empty(t, ivs)
}

func TestDecode_Malformed(t *testing.T) {
	ivs, err := interval.Decode([]float64{0, 1, 1, 2})
	assert.Nil(t, ivs)
	assert.ErrorIs(t, err, interval.ErrMalformedInput)
	assert.Contains(t, err.Error(), "got 4 values")
}

func TestEncodeDecode_Lossless(t *testing.T) {
	in := []interval.Interval{
		interval.New(0, 2, 1),
		interval.New(9, 3, 4),
		interval.Degenerate(),
		interval.New(-1.5, 7.25, math.MaxUint32),
	}
	flat := interval.Encode(in)
	assert.Len(t, flat, len(in)*interval.TripleSize)

	out, err := interval.Decode(flat)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		if in[i].IsDegenerate() {
			assert.True(t, out[i].IsDegenerate())
			continue
		}
		assert.Equal(t, in[i], out[i])
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "[0, 2.5]w3", interval.New(2.5, 0, 3).String())
	assert.Equal(t, "[degenerate]w0", interval.Degenerate().String())
}
