// SPDX-License-Identifier: MIT

package server

import "errors"

var (
	// ErrTooManyIntervals indicates a query above the configured candidate cap.
	ErrTooManyIntervals = errors.New("server: too many intervals")

	// ErrInvalidRequest indicates a query that sets both input forms.
	ErrInvalidRequest = errors.New("server: set either intervals or flat, not both")
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeMalformedInput   = "MALFORMED_INPUT"
	CodeTooManyIntervals = "TOO_MANY_INTERVALS"
)

// IntervalJSON is one candidate. Weight is truncated toward zero and
// saturated to uint32.
type IntervalJSON struct {
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Weight float64 `json:"weight"`
}

// SelectRequest is one query.
type SelectRequest struct {
	Intervals []IntervalJSON `json:"intervals,omitempty"`
	Flat      []float64      `json:"flat,omitempty"`
}

// SelectResponse is one answer. Mask holds 255 (kept) or 0 (dropped) per
// candidate; Selected lists kept positions in chain order.
type SelectResponse struct {
	Mask        []int  `json:"mask"`
	Selected    []int  `json:"selected"`
	TotalWeight uint64 `json:"total_weight"`
}

// BatchRequest groups queries.
type BatchRequest struct {
	Queries []SelectRequest `json:"queries"`
}

// BatchResponse holds one result per query, in request order.
type BatchResponse struct {
	Results []SelectResponse `json:"results"`
}

// HealthResponse answers GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
