package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncOperation is a no-op.
func (n *NoopRecorder) IncOperation(op string) {}

// IncOperationFailure is a no-op.
func (n *NoopRecorder) IncOperationFailure(op, kind string) {}

// ObserveOperationDuration is a no-op.
func (n *NoopRecorder) ObserveOperationDuration(op string, duration time.Duration) {}

// IncHTTPRequest is a no-op.
func (n *NoopRecorder) IncHTTPRequest(route string, status int) {}

// IncAuthFailure is a no-op.
func (n *NoopRecorder) IncAuthFailure(reason string) {}
