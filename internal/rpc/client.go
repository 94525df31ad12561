// Package rpc implements a minimal JSON-RPC 2.0 client over HTTP POST with
// support for single and batched calls.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// DefaultTimeout bounds a single HTTP exchange with the node.
const DefaultTimeout = 10 * time.Second

// Client talks JSON-RPC 2.0 to a single node endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	nextID     atomic.Uint64
}

// NewClient constructs a client for the given endpoint. A non-positive
// timeout falls back to DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BatchRequest is one element of a batched call.
type BatchRequest struct {
	Method string
	Params []any
}

// request is a JSON-RPC 2.0 request envelope.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// response is a JSON-RPC 2.0 response envelope.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// Call performs a single JSON-RPC call and decodes the result into result,
// which may be nil when the caller ignores the payload. Node-side errors are
// returned as *RPCError, everything else as *TransportError.
func (c *Client) Call(ctx context.Context, method string, params []any, result any) error {
	if params == nil {
		params = []any{}
	}
	req := request{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}

	body, err := c.post(ctx, method, req)
	if err != nil {
		return err
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("decode response: %w", err)}
	}
	if resp.Error != nil {
		return resp.Error
	}
	if result == nil || len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return &TransportError{Method: method, Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}

// CallBatch performs a batched call and returns the raw results aligned with
// reqs. Responses may arrive in any order; they are matched back by id. An
// element whose response carries an error, or that received no response at
// all, yields a nil entry rather than failing the whole batch. An empty reqs
// slice performs no HTTP exchange.
func (c *Client) CallBatch(ctx context.Context, reqs []BatchRequest) ([]json.RawMessage, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	envelope := make([]request, len(reqs))
	for i, r := range reqs {
		params := r.Params
		if params == nil {
			params = []any{}
		}
		envelope[i] = request{
			JSONRPC: "2.0",
			ID:      uint64(i),
			Method:  r.Method,
			Params:  params,
		}
	}

	body, err := c.post(ctx, "batch", envelope)
	if err != nil {
		return nil, err
	}

	var resps []response
	if err := json.Unmarshal(body, &resps); err != nil {
		return nil, &TransportError{Method: "batch", Err: fmt.Errorf("decode batch response: %w", err)}
	}

	results := make([]json.RawMessage, len(reqs))
	for _, resp := range resps {
		if resp.ID >= uint64(len(reqs)) {
			continue
		}
		if resp.Error != nil {
			continue
		}
		results[resp.ID] = resp.Result
	}
	return results, nil
}

// post sends payload to the endpoint and returns the raw response body.
func (c *Client) post(ctx context.Context, method string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("read response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Method: method, Err: fmt.Errorf("unexpected http status %d", resp.StatusCode)}
	}
	return respBody, nil
}
