package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ProxyHandler forwards raw JSON-RPC bodies to the node so browser dashboards
// can issue chain queries without leaving the monitor's origin.
type ProxyHandler struct {
	logger   *zap.Logger
	metrics  ProxyMetrics
	endpoint string
	client   *http.Client
	rl       ratelimit.Limiter
	maxBody  int64
}

// NewProxyHandler constructs a ProxyHandler forwarding to the given node
// endpoint. Non-positive timeout, rps and maxBody fall back to defaults.
func NewProxyHandler(endpoint string, timeout time.Duration, rps int, maxBody int64, metrics ProxyMetrics, logger *zap.Logger) (*ProxyHandler, error) {
	if endpoint == "" {
		return nil, errors.New("node endpoint is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if timeout <= 0 {
		timeout = defaultProxyTimeout
	}
	if rps <= 0 {
		rps = defaultProxyRPS
	}
	if maxBody <= 0 {
		maxBody = defaultProxyMaxBody
	}

	return &ProxyHandler{
		logger:   logger,
		metrics:  metrics,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		rl:       ratelimit.New(rps),
		maxBody:  maxBody,
	}, nil
}

func (h *ProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "request body unreadable or too large")
		return
	}

	h.rl.Take()

	started := time.Now()
	resp, err := h.forward(r.Context(), body)
	h.metrics.ObserveForward(err, started)
	if err != nil {
		h.logger.Warn("rpc proxy forward failed", zap.Error(err))
		writeJSONError(w, http.StatusBadGateway, "node unreachable")
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.logger.Warn("rpc proxy response copy interrupted", zap.Error(err))
	}
}

func (h *ProxyHandler) forward(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build node request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forward to node: %w", err)
	}

	return resp, nil
}
