package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/fitai/fitai/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	for _, op := range sortedKeys(snap.Operations) {
		writeMetric(w, "fitai_operations_total{op=%q} %d\n", op, snap.Operations[op])
	}
	for _, key := range sortedKeys(snap.OperationFailures) {
		op, kind := splitLast(key)
		writeMetric(w, "fitai_operation_failures_total{op=%q,kind=%q} %d\n", op, kind, snap.OperationFailures[key])
	}
	for _, op := range sortedKeys(snap.DurationCount) {
		writeMetric(w, "fitai_operation_duration_seconds_count{op=%q} %d\n", op, snap.DurationCount[op])
		writeMetric(w, "fitai_operation_duration_seconds_sum{op=%q} %.6f\n", op, float64(snap.DurationTotalNs[op])/1e9)
	}
	for _, key := range sortedKeys(snap.HTTPRequests) {
		route, status := splitLast(key)
		writeMetric(w, "fitai_http_requests_total{route=%q,status=%q} %d\n", route, status, snap.HTTPRequests[key])
	}
	for _, reason := range sortedKeys(snap.AuthFailures) {
		writeMetric(w, "fitai_auth_failures_total{reason=%q} %d\n", reason, snap.AuthFailures[reason])
	}
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// splitLast splits a "a/b/c" key at its final slash. Route patterns contain
// slashes; the trailing label never does.
func splitLast(key string) (string, string) {
	i := strings.LastIndexByte(key, '/')
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+1:]
}
