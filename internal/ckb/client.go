// Package ckb exposes the node RPC methods the service consumes as a typed,
// metrics-instrumented client.
package ckb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ckbpulse/ckbpulse-backend/internal/rpc"
	"github.com/ckbpulse/ckbpulse-backend/pkg/hexnum"
)

type (
	// Metrics records metrics for node RPC calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

var jsonNull = []byte("null")

// Client wraps the JSON-RPC transport with typed node methods and metrics
// instrumentation.
type Client struct {
	rpc     *rpc.Client
	metrics Metrics
}

// NewClient constructs an instrumented node client.
func NewClient(rpcClient *rpc.Client, metrics Metrics) *Client {
	return &Client{
		rpc:     rpcClient,
		metrics: metrics,
	}
}

// GetTipHeader returns the header of the highest canonical block.
func (c *Client) GetTipHeader(ctx context.Context) (header *Header, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_tip_header", err, started)
	}()

	if err = c.rpc.Call(ctx, "get_tip_header", nil, &header); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("node returned no tip header")
	}
	return header, nil
}

// GetBlockchainInfo returns global chain state, including difficulty.
func (c *Client) GetBlockchainInfo(ctx context.Context) (info *ChainInfo, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_blockchain_info", err, started)
	}()

	if err = c.rpc.Call(ctx, "get_blockchain_info", nil, &info); err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("node returned no chain info")
	}
	return info, nil
}

// GetHeadersByRange batch-fetches headers for heights [start, end] and
// returns them aligned with that range in ascending order. Heights the node
// could not serve yield nil entries.
func (c *Client) GetHeadersByRange(ctx context.Context, start, end uint64) (headers []*Header, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_headers_batch", err, started)
	}()

	if end < start {
		return nil, fmt.Errorf("invalid header range [%d, %d]", start, end)
	}

	reqs := make([]rpc.BatchRequest, 0, end-start+1)
	for height := start; height <= end; height++ {
		reqs = append(reqs, rpc.BatchRequest{
			Method: "get_header_by_number",
			Params: []any{hexnum.Format(height)},
		})
	}

	raw, err := c.rpc.CallBatch(ctx, reqs)
	if err != nil {
		return nil, err
	}

	headers = make([]*Header, len(raw))
	for i, item := range raw {
		if len(item) == 0 || bytes.Equal(item, jsonNull) {
			continue
		}
		var h Header
		if err = json.Unmarshal(item, &h); err != nil {
			return nil, fmt.Errorf("decode header at height %d: %w", start+uint64(i), err)
		}
		headers[i] = &h
	}
	return headers, nil
}

// GetBlocksByHeights batch-fetches full blocks for the given heights and
// returns them aligned with the input. Heights the node could not serve
// yield nil entries.
func (c *Client) GetBlocksByHeights(ctx context.Context, heights []uint64) (blocks []*Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_blocks_batch", err, started)
	}()

	reqs := make([]rpc.BatchRequest, 0, len(heights))
	for _, height := range heights {
		reqs = append(reqs, rpc.BatchRequest{
			Method: "get_block_by_number",
			Params: []any{hexnum.Format(height)},
		})
	}

	raw, err := c.rpc.CallBatch(ctx, reqs)
	if err != nil {
		return nil, err
	}

	blocks = make([]*Block, len(raw))
	for i, item := range raw {
		if len(item) == 0 || bytes.Equal(item, jsonNull) {
			continue
		}
		var b Block
		if err = json.Unmarshal(item, &b); err != nil {
			return nil, fmt.Errorf("decode block at height %d: %w", heights[i], err)
		}
		blocks[i] = &b
	}
	return blocks, nil
}
