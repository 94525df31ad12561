package service

import (
	"math/big"

	"github.com/ckbpulse/ckbpulse-backend/internal/ckb"
	"github.com/ckbpulse/ckbpulse-backend/internal/model"
	"github.com/ckbpulse/ckbpulse-backend/internal/utils"
)

// buildBlockStats pairs consecutive headers into per-block stats. The first
// header only seeds the interval diff and produces no entry of its own.
func buildBlockStats(headers []*ckb.Header, txCounts map[uint64]uint32) []model.BlockStat {
	if len(headers) < 2 {
		return []model.BlockStat{}
	}

	stats := make([]model.BlockStat, 0, len(headers)-1)
	for i := 1; i < len(headers); i++ {
		prev, cur := headers[i-1], headers[i]
		stat := model.BlockStat{
			Height:      uint64(cur.Number),
			TimestampMs: uint64(cur.Timestamp),
			BlockTimeMs: int64(cur.Timestamp) - int64(prev.Timestamp),
		}
		if count, ok := txCounts[uint64(cur.Number)]; ok {
			count := count
			stat.TransactionCount = &count
		}
		stats = append(stats, stat)
	}
	return stats
}

// averageBlockTimeSec averages the newest avgWindowSize block intervals,
// or fewer when the window is short. Zero entries average to 0.
func averageBlockTimeSec(stats []model.BlockStat) float64 {
	if len(stats) == 0 {
		return 0
	}

	window := stats
	if len(window) > avgWindowSize {
		window = window[len(window)-avgWindowSize:]
	}

	var sumMs int64
	for _, s := range window {
		sumMs += s.BlockTimeMs
	}
	return float64(sumMs) / float64(len(window)) / 1000.0
}

// windowedHashrates derives one whole-TH/s estimate per block from the
// trailing hashrateWindowSize intervals before it. Fewer than
// hashrateWindowSize+1 entries yield no estimates.
func windowedHashrates(stats []model.BlockStat, difficulty *big.Int) []model.HashratePoint {
	points := make([]model.HashratePoint, 0)
	if difficulty == nil {
		return points
	}

	for i := hashrateWindowSize; i < len(stats); i++ {
		window := stats[i-hashrateWindowSize : i]

		var sumMs int64
		for _, s := range window {
			sumMs += s.BlockTimeMs
		}
		avgSec := float64(sumMs) / float64(hashrateWindowSize) / 1000.0

		rate := utils.DifficultyToHashrate(difficulty, avgSec)
		points = append(points, model.HashratePoint{
			Height:         stats[i].Height,
			TeraHashPerSec: utils.WholeTeraHash(rate),
		})
	}
	return points
}
