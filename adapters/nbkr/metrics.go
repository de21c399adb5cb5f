package nbkr

import (
	"context"
	"sync"
	"time"
)

// MetricsSource wraps a source with fetch counters
type MetricsSource struct {
	inner        Source
	fetchCount   int64
	fetchErrors  int64
	totalLatency time.Duration
	lastSuccess  time.Time
	mu           sync.RWMutex
}

// NewMetricsSource creates a metrics wrapper
func NewMetricsSource(inner Source) *MetricsSource {
	return &MetricsSource{inner: inner}
}

func (s *MetricsSource) Fetch(ctx context.Context) (*Daily, error) {
	start := time.Now()
	daily, err := s.inner.Fetch(ctx)

	s.mu.Lock()
	s.fetchCount++
	s.totalLatency += time.Since(start)
	if err != nil {
		s.fetchErrors++
	} else {
		s.lastSuccess = time.Now()
	}
	s.mu.Unlock()

	return daily, err
}

// Metrics is a point-in-time view of the counters
type Metrics struct {
	Fetches      int64     `json:"fetches"`
	Errors       int64     `json:"errors"`
	AvgLatencyMs int64     `json:"avg_latency_ms"`
	LastSuccess  time.Time `json:"last_success,omitempty"`
}

// Metrics returns the current counters
func (s *MetricsSource) Metrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := Metrics{Fetches: s.fetchCount, Errors: s.fetchErrors, LastSuccess: s.lastSuccess}
	if s.fetchCount > 0 {
		m.AvgLatencyMs = (s.totalLatency / time.Duration(s.fetchCount)).Milliseconds()
	}
	return m
}
