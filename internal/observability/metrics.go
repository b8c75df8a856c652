package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-process counters for served requests and error outcomes,
// keyed by route, method and result. There is no metrics backend in this
// deployment; the counters feed the request logger and the tests.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]int64
	errors   map[string]int64
}

// NewMetrics returns an empty counter set.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]int64),
		errors:   make(map[string]int64),
	}
}

// RecordRequest counts one served request. Duration is accepted for
// interface stability but not aggregated.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	key := counterKey(path, method, strconv.Itoa(status))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[key]++
}

// RecordError counts one failed request by domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := counterKey(path, method, code)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[key]++
}

func counterKey(path, method, outcome string) string {
	return path + "|" + method + "|" + outcome
}
