package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"calk-kg/core/catalog"
	"calk-kg/core/engine"
	"calk-kg/internal/errors"
	"calk-kg/internal/logging"
)

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !engine.Has(slug) {
		s.writeError(w, errors.NotFound("calculator", slug))
		return
	}

	body, err := s.readBody(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	report, err := s.engine.Run(r.Context(), slug, body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"pages": catalog.Default.List(),
		"stats": catalog.Default.Stats(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	cacheStatus := "ok"
	if err := s.cache.Ping(r.Context()); err != nil {
		status = "degraded"
		cacheStatus = errorMessage(err)
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  status,
		"version": s.config.Version,
		"time":    s.now().UTC().Format(time.RFC3339),
		"cache":   cacheStatus,
		"nbkr":    s.upstream.Metrics(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":     s.config.Version,
		"engine":      "calk-kg",
		"api_version": "v1",
		"calculators": len(engine.Slugs()),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	requests, failures, latency := s.requestCount, s.errorCount, s.totalLatencyMs
	s.mu.RUnlock()

	avgLatency := float64(0)
	if requests > 0 {
		avgLatency = float64(latency) / float64(requests)
	}
	up := s.upstream.Metrics()

	metrics := fmt.Sprintf(`# HELP calk_requests_total Total requests
# TYPE calk_requests_total counter
calk_requests_total %d

# HELP calk_errors_total Total errors
# TYPE calk_errors_total counter
calk_errors_total %d

# HELP calk_latency_avg_ms Average latency
# TYPE calk_latency_avg_ms gauge
calk_latency_avg_ms %.2f

# HELP calk_nbkr_fetches_total National Bank feed fetches
# TYPE calk_nbkr_fetches_total counter
calk_nbkr_fetches_total %d

# HELP calk_nbkr_errors_total Failed National Bank feed fetches
# TYPE calk_nbkr_errors_total counter
calk_nbkr_errors_total %d
`, requests, failures, avgLatency, up.Fetches, up.Errors)

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(metrics))
}

// Helpers

func (s *Server) readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, s.config.MaxBodySize+1))
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "read request body", err)
	}
	if int64(len(body)) > s.config.MaxBodySize {
		return nil, errors.Newf(errors.TypeInput, "request body exceeds %d bytes", s.config.MaxBodySize)
	}
	return body, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	e, ok := errors.As(err)
	if !ok {
		e = errors.Internal("unexpected error", err)
	}
	status := e.HTTPStatus()
	if status >= http.StatusInternalServerError {
		s.mu.Lock()
		s.errorCount++
		s.mu.Unlock()
		logging.Error("request failed", zap.Error(err))
	}

	s.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   e,
	})
}
