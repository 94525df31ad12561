// Package service implements the history aggregation core: fetching recent
// chain data, deriving block-time and hashrate statistics, and caching the
// result with single-flight refresh.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ckbpulse/ckbpulse-backend/internal/ckb"
	"github.com/ckbpulse/ckbpulse-backend/internal/model"
	"github.com/ckbpulse/ckbpulse-backend/internal/utils"
	"github.com/ckbpulse/ckbpulse-backend/pkg/ttlcache"
)

// HistoryService derives chain statistics from the node and serves them out
// of a freshness-bounded cache.
type HistoryService struct {
	logger  *zap.Logger
	node    NodeClient
	metrics HistoryMetrics
	cache   *ttlcache.Cache[*model.HistorySnapshot]
}

// NewHistoryService builds a HistoryService with dependencies. A
// non-positive ttl falls back to DefaultSnapshotTTL.
func NewHistoryService(node NodeClient, metrics HistoryMetrics, logger *zap.Logger, ttl time.Duration) (*HistoryService, error) {
	if node == nil {
		return nil, errors.New("node client is required")
	}
	if metrics == nil {
		return nil, errors.New("history metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}

	s := &HistoryService{
		logger:  logger,
		node:    node,
		metrics: metrics,
	}
	s.cache = ttlcache.New(ttl, s.refresh)
	return s, nil
}

// GetSnapshot returns the cached snapshot, refreshing it first when empty or
// stale. Concurrent callers of a stale cache share one refresh cycle; a
// failed refresh surfaces as an error and leaves the cache untouched.
func (s *HistoryService) GetSnapshot(ctx context.Context) (*model.HistorySnapshot, error) {
	return s.cache.Get(ctx)
}

// StaleSnapshot returns the last good snapshot and its age regardless of
// freshness, for callers that prefer stale data over an error. ok is false
// before the first successful cycle.
func (s *HistoryService) StaleSnapshot() (*model.HistorySnapshot, time.Duration, bool) {
	return s.cache.Peek()
}

func (s *HistoryService) refresh(ctx context.Context) (snapshot *model.HistorySnapshot, err error) {
	started := time.Now()
	defer func() {
		var blocks int
		var tip uint64
		if snapshot != nil {
			blocks, tip = len(snapshot.Blocks), snapshot.TipHeight
		}
		s.metrics.ObserveRefresh(err, blocks, tip, started)
	}()

	snapshot, err = s.aggregate(ctx)
	if err != nil {
		s.logger.Error("history refresh failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("history refreshed",
		zap.Uint64("tip", snapshot.TipHeight),
		zap.Int("blocks", len(snapshot.Blocks)),
		zap.Duration("took", time.Since(started)),
	)
	return snapshot, nil
}

// aggregate runs one fetch-and-compute cycle against the node.
func (s *HistoryService) aggregate(ctx context.Context) (*model.HistorySnapshot, error) {
	var (
		tip  *ckb.Header
		info *ckb.ChainInfo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		header, err := s.node.GetTipHeader(gctx)
		if err != nil {
			return fmt.Errorf("fetch tip header: %w", err)
		}
		tip = header
		return nil
	})
	g.Go(func() error {
		chainInfo, err := s.node.GetBlockchainInfo(gctx)
		if err != nil {
			return fmt.Errorf("fetch chain info: %w", err)
		}
		info = chainInfo
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, &AggregationError{Err: err}
	}

	tipHeight := uint64(tip.Number)
	count := uint64(headerWindowSize)
	if tipHeight+1 < count {
		count = tipHeight + 1
	}
	start := tipHeight - count + 1

	headers, err := s.node.GetHeadersByRange(ctx, start, tipHeight)
	if err != nil {
		return nil, &AggregationError{Err: fmt.Errorf("fetch header window [%d, %d]: %w", start, tipHeight, err)}
	}
	for i, header := range headers {
		if header == nil {
			return nil, &AggregationError{Err: fmt.Errorf("node served no header for height %d", start+uint64(i))}
		}
	}

	stats := buildBlockStats(headers, s.fetchTransactionCounts(ctx, tipHeight, count))
	avgSec := averageBlockTimeSec(stats)

	snapshot := &model.HistorySnapshot{
		TipHeight:           tipHeight,
		Blocks:              stats,
		AverageBlockTimeSec: avgSec,
		NetworkHashrate:     model.HashrateUnavailable,
		HashratePerBlock:    []model.HashratePoint{},
	}

	difficulty, ok := utils.ParseDifficulty(info.Difficulty)
	if !ok {
		s.logger.Warn("difficulty missing or unparsable; hashrate unavailable",
			zap.String("difficulty", info.Difficulty))
		return snapshot, nil
	}
	snapshot.NetworkHashrate = utils.FormatHashrate(utils.DifficultyToHashrate(difficulty, avgSec))
	snapshot.HashratePerBlock = windowedHashrates(stats, difficulty)

	return snapshot, nil
}

// fetchTransactionCounts fills the transaction sub-window: full blocks for
// the newest txWindowSize heights. Failures here degrade to missing counts;
// block-time statistics must survive without transaction data.
func (s *HistoryService) fetchTransactionCounts(ctx context.Context, tipHeight, count uint64) map[uint64]uint32 {
	window := uint64(txWindowSize)
	if count < window {
		window = count
	}
	if window == 0 {
		return nil
	}

	heights := make([]uint64, 0, window)
	for h := tipHeight - window + 1; h <= tipHeight; h++ {
		heights = append(heights, h)
	}

	blocks, err := s.node.GetBlocksByHeights(ctx, heights)
	if err != nil {
		s.logger.Warn("transaction window fetch failed; counts omitted", zap.Error(err))
		return nil
	}

	counts := make(map[uint64]uint32, len(blocks))
	for _, block := range blocks {
		if block == nil {
			continue
		}
		n := len(block.Transactions) - cellbaseTxCount
		if n < 0 {
			n = 0
		}
		counts[uint64(block.Header.Number)] = uint32(n)
	}
	return counts
}
