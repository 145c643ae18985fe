// SPDX-License-Identifier: MIT

// Package metrics exports selection activity as Prometheus series. A
// Collector implements selection.Observer and registers on the Registerer it
// is given, so tests and embedders can keep their own registry.
package metrics
