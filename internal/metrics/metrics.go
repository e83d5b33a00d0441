// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Data access metrics, keyed by operation name (e.g. "food_entries.get").
	IncOperation(op string)
	IncOperationFailure(op, kind string)
	ObserveOperationDuration(op string, duration time.Duration)

	// Development server metrics
	IncHTTPRequest(route string, status int)
	IncAuthFailure(reason string) // reason: "missing_token", "unknown_token", "bad_credentials"
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
