package metrics

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Operations        map[string]uint64
	OperationFailures map[string]uint64 // keyed "op/kind"
	DurationCount     map[string]uint64
	DurationTotalNs   map[string]int64
	HTTPRequests      map[string]uint64 // keyed "route/status"
	AuthFailures      map[string]uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{snap: emptySnapshot()}
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Operations:        make(map[string]uint64),
		OperationFailures: make(map[string]uint64),
		DurationCount:     make(map[string]uint64),
		DurationTotalNs:   make(map[string]int64),
		HTTPRequests:      make(map[string]uint64),
		AuthFailures:      make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := emptySnapshot()
	copyInto(out.Operations, m.snap.Operations)
	copyInto(out.OperationFailures, m.snap.OperationFailures)
	copyInto(out.DurationCount, m.snap.DurationCount)
	copyInto(out.DurationTotalNs, m.snap.DurationTotalNs)
	copyInto(out.HTTPRequests, m.snap.HTTPRequests)
	copyInto(out.AuthFailures, m.snap.AuthFailures)
	return out
}

func copyInto[V uint64 | int64](dst, src map[string]V) {
	for k, v := range src {
		dst[k] = v
	}
}

// IncOperation increments the call counter for op.
func (m *InMemoryRecorder) IncOperation(op string) {
	m.mu.Lock()
	m.snap.Operations[op]++
	m.mu.Unlock()
}

// IncOperationFailure increments the failure counter for op and kind.
func (m *InMemoryRecorder) IncOperationFailure(op, kind string) {
	m.mu.Lock()
	m.snap.OperationFailures[op+"/"+kind]++
	m.mu.Unlock()
}

// ObserveOperationDuration records how long op took.
func (m *InMemoryRecorder) ObserveOperationDuration(op string, duration time.Duration) {
	m.mu.Lock()
	m.snap.DurationCount[op]++
	m.snap.DurationTotalNs[op] += duration.Nanoseconds()
	m.mu.Unlock()
}

// IncHTTPRequest increments the request counter for route and status.
func (m *InMemoryRecorder) IncHTTPRequest(route string, status int) {
	m.mu.Lock()
	m.snap.HTTPRequests[fmt.Sprintf("%s/%d", route, status)]++
	m.mu.Unlock()
}

// IncAuthFailure increments the auth failure counter for reason.
func (m *InMemoryRecorder) IncAuthFailure(reason string) {
	m.mu.Lock()
	m.snap.AuthFailures[reason]++
	m.mu.Unlock()
}
