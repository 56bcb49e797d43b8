package speeds

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeExact        = "exact"
	outcomeInterpolated = "interpolated"
	outcomeFailure      = "failure"
)

var (
	resolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "millwright_resolve_duration_seconds",
			Help:    "Duration of speed/feed table resolutions in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	resolveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "millwright_resolve_total",
			Help: "Total number of speed/feed table resolutions by outcome",
		},
		[]string{"outcome"},
	)
)
