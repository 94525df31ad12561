// Package transport exposes the HTTP handlers of the monitoring surface.
package transport

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// HistoryHandler serves the aggregated block history snapshot.
type HistoryHandler struct {
	logger  *zap.Logger
	source  SnapshotProvider
	metrics HistoryMetrics
}

// NewHistoryHandler constructs a HistoryHandler.
func NewHistoryHandler(source SnapshotProvider, metrics HistoryMetrics, logger *zap.Logger) (*HistoryHandler, error) {
	if source == nil {
		return nil, errors.New("snapshot provider is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &HistoryHandler{
		logger:  logger,
		source:  source,
		metrics: metrics,
	}, nil
}

// ServeHTTP answers with a fresh snapshot when the cache can provide one,
// falls back to the last good snapshot when the refresh fails, and reports
// 503 only when there is nothing to serve at all.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snapshot, err := h.source.GetSnapshot(r.Context())
	if err == nil {
		writeJSON(w, http.StatusOK, snapshot)
		return
	}

	stale, age, ok := h.source.StaleSnapshot()
	if !ok {
		h.logger.Error("history unavailable", zap.Error(err))
		writeJSONError(w, http.StatusServiceUnavailable, "history temporarily unavailable")
		return
	}

	h.logger.Warn("serving stale history", zap.Error(err), zap.Duration("age", age))
	h.metrics.ObserveStaleServed()
	writeJSON(w, http.StatusOK, stale)
}
