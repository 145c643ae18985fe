// SPDX-License-Identifier: MIT

package selection

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/nooverlap/interval"
	"github.com/katalvlaran/nooverlap/longestpath"
	"github.com/katalvlaran/nooverlap/order"
	"github.com/katalvlaran/nooverlap/precedence"
	"github.com/katalvlaran/nooverlap/sweep"
)

// reasonCycle labels queries that fell back to an empty selection.
const reasonCycle = "cycle_detected"

// Selector runs queries with a fixed set of options. It holds no per-query
// state, so one Selector may serve many goroutines.
type Selector struct {
	opts Options
}

// New returns a Selector configured by opts.
func New(opts ...Option) *Selector {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Selector{opts: cfg}
}

var defaultSelector = New()

// Strategy reports the configured algorithm.
func (s *Selector) Strategy() Strategy { return s.opts.Strategy }

// RemoveOverlapping decodes input, solves, and overwrites output with the
// mask. Preconditions are checked before output is touched:
//
//   - len(input) % 3 == 0, else interval.ErrMalformedInput;
//   - len(output) == len(input)/3, else ErrBufferMismatch.
func (s *Selector) RemoveOverlapping(input []float64, output []byte) error {
	if len(input)%interval.TripleSize != 0 {
		return fmt.Errorf("%w: got %d values", interval.ErrMalformedInput, len(input))
	}
	if n := len(input) / interval.TripleSize; len(output) != n {
		return fmt.Errorf("%w: %d intervals, %d bytes", ErrBufferMismatch, n, len(output))
	}

	res, err := s.Flat(input)
	if err != nil {
		return err
	}
	copy(output, res.Mask)

	return nil
}

// Flat decodes input into intervals and solves them.
func (s *Selector) Flat(input []float64) (Result, error) {
	ivs, err := interval.Decode(input)
	if err != nil {
		return Result{}, err
	}

	return s.Intervals(ivs), nil
}

// Intervals solves ivs with the configured strategy. Queries answered by the
// 0- and 1-interval shortcuts are reported under that strategy too.
func (s *Selector) Intervals(ivs []interval.Interval) Result {
	if s.opts.Strategy != StrategySweep {
		return Items(s, ivs)
	}

	start := time.Now()
	if res, ok := shortcut(s, string(StrategySweep), ivs, start); ok {
		return res
	}
	path, total := sweep.Solve(ivs)

	return s.finish(string(StrategySweep), len(ivs), path, total, start)
}

// Items solves any order.Item slice with the graph engine. A nil Selector
// uses the package defaults.
//
// Shortcuts: no items → empty result; one item → that item.
// A cycle (broken Compare) yields an empty selection, never an error.
func Items[T order.Item[T]](s *Selector, items []T) Result {
	if s == nil {
		s = defaultSelector
	}
	start := time.Now()
	if res, ok := shortcut(s, string(StrategyGraph), items, start); ok {
		return res
	}

	res, err := longestpath.Solve(precedence.Build(items))
	if err != nil {
		s.opts.Logger.Warn("selection: falling back to empty selection",
			slog.Int("candidates", len(items)),
			slog.String("error", err.Error()))
		if s.opts.Observer != nil {
			s.opts.Observer.ObserveFailure(reasonCycle)
		}

		return Result{Indices: []int{}, Mask: EncodeMask(nil, len(items))}
	}

	return s.finish(string(StrategyGraph), len(items), res.Path, res.Total, start)
}

// shortcut answers queries with fewer than two items.
func shortcut[T order.Item[T]](s *Selector, strategy string, items []T, start time.Time) (Result, bool) {
	switch len(items) {
	case 0:
		return s.finish(strategy, 0, []int{}, 0, start), true
	case 1:
		return s.finish(strategy, 1, []int{0}, uint64(items[0].Weight()), start), true
	}

	return Result{}, false
}

// finish builds the Result and reports it.
func (s *Selector) finish(strategy string, n int, path []int, total uint64, start time.Time) Result {
	elapsed := time.Since(start)
	s.opts.Logger.Debug("selection: solved",
		slog.String("strategy", strategy),
		slog.Int("candidates", n),
		slog.Int("selected", len(path)),
		slog.Uint64("total_weight", total),
		slog.Duration("elapsed", elapsed))
	if s.opts.Observer != nil {
		s.opts.Observer.ObserveSelection(strategy, n, len(path), elapsed)
	}

	return Result{Indices: path, Total: total, Mask: EncodeMask(path, n)}
}

// RemoveOverlapping runs the default Selector (graph strategy, no logging).
func RemoveOverlapping(input []float64, output []byte) error {
	return defaultSelector.RemoveOverlapping(input, output)
}
