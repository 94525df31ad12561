package transport

import (
	"errors"
	"net/http"
)

type healthResponse struct {
	Status      string  `json:"status"`
	Cache       string  `json:"cache"`
	TipHeight   uint64  `json:"tipHeight,omitempty"`
	CacheAgeSec float64 `json:"cacheAgeSec,omitempty"`
}

// HealthHandler reports process self-status.
type HealthHandler struct {
	source SnapshotProvider
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(source SnapshotProvider) (*HealthHandler, error) {
	if source == nil {
		return nil, errors.New("snapshot provider is required")
	}

	return &HealthHandler{source: source}, nil
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp := healthResponse{Status: "ok", Cache: "empty"}
	if snapshot, age, ok := h.source.StaleSnapshot(); ok {
		resp.Cache = "warm"
		resp.TipHeight = snapshot.TipHeight
		resp.CacheAgeSec = age.Seconds()
	}

	writeJSON(w, http.StatusOK, resp)
}
