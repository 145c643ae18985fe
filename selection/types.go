// SPDX-License-Identifier: MIT

package selection

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var (
	// ErrBufferMismatch indicates an output buffer whose length differs from
	// the number of decoded intervals.
	ErrBufferMismatch = errors.New("selection: output buffer length does not match interval count")

	// ErrUnknownStrategy indicates an unsupported strategy name.
	ErrUnknownStrategy = errors.New("selection: unknown strategy")
)

// Strategy names a solving algorithm.
type Strategy string

const (
	// StrategyGraph reduces to a longest path in the precedence DAG.
	StrategyGraph Strategy = "graph"
	// StrategySweep sorts by upper bound and binary-searches predecessors.
	StrategySweep Strategy = "sweep"
)

// ParseStrategy validates a strategy name. The empty string means StrategyGraph.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", StrategyGraph:
		return StrategyGraph, nil
	case StrategySweep:
		return StrategySweep, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Observer receives one callback per solved query. Implementations must be
// safe for concurrent use when a Selector is shared across goroutines.
type Observer interface {
	// ObserveSelection reports a completed query.
	ObserveSelection(strategy string, candidates, selected int, elapsed time.Duration)
	// ObserveFailure reports a query that degraded to an empty selection.
	ObserveFailure(reason string)
}

// Options configures a Selector.
type Options struct {
	Logger   *slog.Logger // never nil after DefaultOptions
	Observer Observer     // nil disables reporting
	Strategy Strategy
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns a silent logger, no observer and StrategyGraph.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.DiscardHandler),
		Observer: nil,
		Strategy: StrategyGraph,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs a metrics sink.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithStrategy selects the algorithm. It panics on an unknown strategy;
// validate user input with ParseStrategy first.
func WithStrategy(s Strategy) Option {
	parsed, err := ParseStrategy(string(s))
	if err != nil {
		panic(err.Error())
	}

	return func(o *Options) {
		o.Strategy = parsed
	}
}

// Result is one solved query.
type Result struct {
	// Indices are the kept input positions in chain order.
	Indices []int
	// Total is the summed weight of the kept intervals.
	Total uint64
	// Mask has one byte per input: Selected or NotSelected.
	Mask []byte
}
