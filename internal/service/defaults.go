package service

import "time"

const (
	// headerWindowSize is how many recent headers one cycle fetches.
	headerWindowSize = 60
	// txWindowSize is how many of the newest blocks are fetched in full for
	// transaction counts. Older blocks only contribute header-derived stats.
	txWindowSize = 30
	// avgWindowSize bounds the trailing window for the average block time.
	avgWindowSize = 20
	// hashrateWindowSize is the trailing window for per-block hashrate
	// estimates.
	hashrateWindowSize = 10

	// cellbaseTxCount is the synthetic leading transaction every block
	// carries; it is excluded from the published transaction count.
	cellbaseTxCount = 1

	// DefaultSnapshotTTL is how long a refreshed snapshot is served without
	// re-fetching.
	DefaultSnapshotTTL = 15 * time.Second
)
