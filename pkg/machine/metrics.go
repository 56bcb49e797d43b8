package machine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sourceManufacturer = "manufacturer"
	sourceChart        = "chart"
	sourceNone         = "none"
)

var (
	clampTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "millwright_spindle_clamp_total",
			Help: "Total number of surface-speed requests clamped to the machine maximum",
		},
	)

	feedDerivations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "millwright_feed_derivations_total",
			Help: "Total number of feed derivations by spindle-speed source",
		},
		[]string{"source"},
	)
)
