// SPDX-License-Identifier: MIT

// Package server hosts the selection engine over HTTP with gin.
//
// Routes:
//
//	POST /v1/select        one query
//	POST /v1/select/batch  many queries, solved concurrently
//	GET  /healthz          liveness
//	GET  /metrics          Prometheus exposition (when enabled)
//
// A query carries either structured intervals or a flat triple buffer:
//
//	{"intervals":[{"lower":0,"upper":2,"weight":1}]}
//	{"flat":[0,2,1]}
//
// and is answered with
//
//	{"mask":[255],"selected":[0],"total_weight":1}
//
// Errors:
//
//   - ErrInvalidRequest    both intervals and flat are set.
//   - ErrTooManyIntervals  the query exceeds engine.max_intervals.
//   - interval.ErrMalformedInput  flat length is not a multiple of 3.
//
// All three map to 400 Bad Request.
package server
