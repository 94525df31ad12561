package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	historyRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ckbpulse",
		Subsystem: "history",
		Name:      "refresh_total",
		Help:      "Count of history aggregation cycles.",
	}, []string{"network", "status"})

	historyRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ckbpulse",
		Subsystem: "history",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of history aggregation cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	historyWindowSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ckbpulse",
		Subsystem: "history",
		Name:      "window_size",
		Help:      "Number of block stats per refreshed snapshot.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"network"})

	historyTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "ckbpulse",
		Subsystem: "history",
		Name:      "tip_height",
		Help:      "Tip height observed by the last successful refresh.",
	}, []string{"network"})

	historyStaleServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ckbpulse",
		Subsystem: "history",
		Name:      "stale_served_total",
		Help:      "Count of history responses served from an expired snapshot.",
	}, []string{"network"})
)

// History tracks metrics for the history aggregation cycle.
type History struct {
	network string
}

// NewHistory constructs a metrics collector for the aggregator.
func NewHistory(network string) *History {
	if network == "" {
		network = "unknown"
	}
	return &History{network: network}
}

// ObserveRefresh records one aggregation cycle. Window size and tip height
// are recorded only for successful cycles.
func (m History) ObserveRefresh(err error, blocks int, tip uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	historyRefreshTotal.WithLabelValues(m.network, status).Inc()
	historyRefreshDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())

	if err == nil {
		historyWindowSize.WithLabelValues(m.network).Observe(float64(blocks))
		historyTipHeight.WithLabelValues(m.network).Set(float64(tip))
	}
}

// ObserveStaleServed records a history response answered from an expired
// snapshot after a failed refresh.
func (m History) ObserveStaleServed() {
	historyStaleServedTotal.WithLabelValues(m.network).Inc()
}
