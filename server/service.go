// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nooverlap/interval"
	"github.com/katalvlaran/nooverlap/selection"
)

// Service validates queries and runs them through a Selector. It is safe for
// concurrent use.
type Service struct {
	sel          *selection.Selector
	maxIntervals int
}

// NewService wraps sel with a per-query candidate cap. maxIntervals <= 0
// disables the cap.
func NewService(sel *selection.Selector, maxIntervals int) *Service {
	if sel == nil {
		sel = selection.New()
	}

	return &Service{sel: sel, maxIntervals: maxIntervals}
}

// Decode turns a request into intervals, enforcing the input rules.
func (s *Service) Decode(req SelectRequest) ([]interval.Interval, error) {
	if req.Intervals != nil && req.Flat != nil {
		return nil, ErrInvalidRequest
	}

	var ivs []interval.Interval
	if req.Flat != nil {
		var err error
		if ivs, err = interval.Decode(req.Flat); err != nil {
			return nil, err
		}
	} else {
		ivs = make([]interval.Interval, len(req.Intervals))
		for i, in := range req.Intervals {
			ivs[i] = interval.FromTriple(in.Lower, in.Upper, in.Weight)
		}
	}

	if s.maxIntervals > 0 && len(ivs) > s.maxIntervals {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyIntervals, len(ivs), s.maxIntervals)
	}

	return ivs, nil
}

// Solve answers one query.
func (s *Service) Solve(req SelectRequest) (SelectResponse, error) {
	ivs, err := s.Decode(req)
	if err != nil {
		return SelectResponse{}, err
	}

	return respond(s.sel.Intervals(ivs)), nil
}

// SolveBatch validates every query in order, then solves them with at most
// limit goroutines. The first invalid query (by position) fails the batch.
func (s *Service) SolveBatch(ctx context.Context, reqs []SelectRequest, limit int) ([]SelectResponse, error) {
	decoded := make([][]interval.Interval, len(reqs))
	for i, req := range reqs {
		ivs, err := s.Decode(req)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		decoded[i] = ivs
	}

	out := make([]SelectResponse, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, ivs := range decoded {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = respond(s.sel.Intervals(ivs))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func respond(res selection.Result) SelectResponse {
	mask := make([]int, len(res.Mask))
	for i, b := range res.Mask {
		mask[i] = int(b)
	}

	return SelectResponse{Mask: mask, Selected: res.Indices, TotalWeight: res.Total}
}
