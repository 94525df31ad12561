package service

import (
	"context"
	"time"

	"github.com/ckbpulse/ckbpulse-backend/internal/ckb"
	"github.com/ckbpulse/ckbpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the subset of the node RPC surface the aggregator needs.
	NodeClient interface {
		GetTipHeader(ctx context.Context) (*ckb.Header, error)
		GetBlockchainInfo(ctx context.Context) (*ckb.ChainInfo, error)
		GetHeadersByRange(ctx context.Context, start, end uint64) ([]*ckb.Header, error)
		GetBlocksByHeights(ctx context.Context, heights []uint64) ([]*ckb.Block, error)
	}

	// HistoryMetrics records aggregation cycle outcomes.
	HistoryMetrics interface {
		ObserveRefresh(err error, blocks int, tip uint64, started time.Time)
	}

	// SnapshotSource produces history snapshots on demand.
	SnapshotSource interface {
		GetSnapshot(ctx context.Context) (*model.HistorySnapshot, error)
	}
)
