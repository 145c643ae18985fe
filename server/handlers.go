// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/nooverlap/interval"
)

// Handlers binds a Service to gin routes.
type Handlers struct {
	svc              *Service
	logger           *slog.Logger
	batchConcurrency int
}

// NewHandlers returns handlers for svc. A nil logger discards output.
func NewHandlers(svc *Service, logger *slog.Logger, batchConcurrency int) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Handlers{svc: svc, logger: logger, batchConcurrency: batchConcurrency}
}

// HandleSelect handles POST /v1/select.
//
// Response:
//
//	200 OK: SelectResponse
//	400 Bad Request: ErrorResponse
func (h *Handlers) HandleSelect(c *gin.Context) {
	logger := h.logger.With("handler", "HandleSelect")

	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: CodeInvalidRequest})
		return
	}

	resp, err := h.svc.Solve(req)
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleBatch handles POST /v1/select/batch.
//
// Response:
//
//	200 OK: BatchResponse
//	400 Bad Request: ErrorResponse naming the first invalid query
func (h *Handlers) HandleBatch(c *gin.Context) {
	logger := h.logger.With("handler", "HandleBatch")

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: CodeInvalidRequest})
		return
	}

	results, err := h.svc.SolveBatch(c.Request.Context(), req.Queries, h.batchConcurrency)
	if err != nil {
		h.fail(c, logger, err)
		return
	}

	logger.Debug("batch solved", "queries", len(results))
	c.JSON(http.StatusOK, BatchResponse{Results: results})
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// fail maps a Service error to a status code and error body.
func (h *Handlers) fail(c *gin.Context, logger *slog.Logger, err error) {
	status, code := http.StatusBadRequest, CodeInvalidRequest
	switch {
	case errors.Is(err, interval.ErrMalformedInput):
		code = CodeMalformedInput
	case errors.Is(err, ErrTooManyIntervals):
		code = CodeTooManyIntervals
	case errors.Is(err, ErrInvalidRequest):
	default:
		// context cancellation from the batch fan-out
		status = http.StatusServiceUnavailable
		code = ""
	}

	logger.Warn("query rejected", "status", status, "error", err)
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}
