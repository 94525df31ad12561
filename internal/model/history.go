package model

// HashrateUnavailable is published instead of a formatted hashrate when the
// node's difficulty is missing or unparsable.
const HashrateUnavailable = "unavailable"

// BlockStat describes one block in the history window.
type BlockStat struct {
	Height      uint64 `json:"height"`
	TimestampMs uint64 `json:"timestampMs"`
	// TransactionCount is null for blocks outside the transaction sub-window.
	TransactionCount *uint32 `json:"transactionCount"`
	BlockTimeMs      int64   `json:"blockTimeMs"`
}

// HashratePoint is a windowed hashrate estimate attributed to one block.
type HashratePoint struct {
	Height         uint64 `json:"height"`
	TeraHashPerSec int64  `json:"hashrateTeraHashPerSec"`
}

// HistorySnapshot is the derived state published to the dashboard. It is
// built by one aggregation cycle and replaced wholesale by the next.
type HistorySnapshot struct {
	TipHeight           uint64          `json:"tipHeight"`
	Blocks              []BlockStat     `json:"blocks"`
	AverageBlockTimeSec float64         `json:"averageBlockTimeSec"`
	NetworkHashrate     string          `json:"networkHashrate"`
	HashratePerBlock    []HashratePoint `json:"hashratePerBlock"`
}
