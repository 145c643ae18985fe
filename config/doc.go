// SPDX-License-Identifier: MIT

// Package config loads the YAML settings shared by the nooverlap CLI and
// HTTP server.
//
// File layout (every key optional; missing keys keep Default values):
//
//	log:
//	  level: info          # debug | info | warn | error
//	  format: text         # text | json
//	engine:
//	  strategy: graph      # graph | sweep
//	  max_intervals: 4096
//	server:
//	  addr: ":8080"
//	  batch_concurrency: 4
//	  read_timeout: 10s
//	  metrics: true
//
// Errors:
//
//   - ErrInvalidConfig  a value is out of range or names an unknown option.
//
// Read and YAML errors from Load are wrapped with the file path.
package config
