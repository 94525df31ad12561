package transport

import (
	"context"
	"time"

	"github.com/ckbpulse/ckbpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// SnapshotProvider hands out history snapshots, fresh or stale.
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context) (*model.HistorySnapshot, error)
	StaleSnapshot() (*model.HistorySnapshot, time.Duration, bool)
}

// HistoryMetrics counts degraded history responses.
type HistoryMetrics interface {
	ObserveStaleServed()
}

// ProxyMetrics observes calls forwarded to the node.
type ProxyMetrics interface {
	ObserveForward(err error, started time.Time)
}
