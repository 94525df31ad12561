package ckb

import (
	"encoding/json"

	"github.com/ckbpulse/ckbpulse-backend/pkg/hexnum"
)

// Header is a block header as returned by the node. Numeric fields arrive as
// 0x-hex strings; timestamps are unix milliseconds.
type Header struct {
	Hash          string        `json:"hash"`
	ParentHash    string        `json:"parent_hash"`
	Number        hexnum.Uint64 `json:"number"`
	Timestamp     hexnum.Uint64 `json:"timestamp"`
	Epoch         string        `json:"epoch"`
	CompactTarget string        `json:"compact_target"`
	Nonce         string        `json:"nonce"`
}

// ChainInfo is the node's global chain state. Difficulty stays a raw hex
// string: it can exceed uint64 and is parsed into a big integer only where
// hashrate is derived.
type ChainInfo struct {
	Chain                  string        `json:"chain"`
	Difficulty             string        `json:"difficulty"`
	Epoch                  string        `json:"epoch"`
	MedianTime             hexnum.Uint64 `json:"median_time"`
	IsInitialBlockDownload bool          `json:"is_initial_block_download"`
}

// Block is a full block. Transaction payloads are opaque to this service;
// only their count matters, so they stay raw.
type Block struct {
	Header       Header            `json:"header"`
	Transactions []json.RawMessage `json:"transactions"`
	Proposals    []string          `json:"proposals"`
}
