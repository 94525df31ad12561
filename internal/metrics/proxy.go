package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	proxyForwardsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ckbpulse",
		Subsystem: "proxy",
		Name:      "forwards_total",
		Help:      "Count of raw RPC requests forwarded to the node.",
	}, []string{"network", "status"})

	proxyForwardDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ckbpulse",
		Subsystem: "proxy",
		Name:      "forward_duration_seconds",
		Help:      "Duration of forwarded RPC requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Proxy tracks metrics for the raw RPC proxy.
type Proxy struct {
	network string
}

// NewProxy constructs a metrics collector for the RPC proxy.
func NewProxy(network string) *Proxy {
	if network == "" {
		network = "unknown"
	}
	return &Proxy{network: network}
}

// ObserveForward records one proxied request outcome and duration.
func (m Proxy) ObserveForward(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	proxyForwardsTotal.WithLabelValues(m.network, status).Inc()
	proxyForwardDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}
