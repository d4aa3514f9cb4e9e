// Package slo defines the service level objective targets for the
// storage layer and the gauges that track how the service measures up
// against them. The gauges are meant to be refreshed periodically from
// recent measurements, typically derived from the storage query
// histogram.
package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets. Availability is a percentage; latencies are seconds;
// the error rate is a ratio.
const (
	// AvailabilitySLO allows roughly 43 minutes of downtime per month.
	AvailabilitySLO = 99.9

	LatencyP95SLO = 0.200
	LatencyP99SLO = 0.500

	ErrorRateSLO = 0.001
)

var (
	// SLOAvailability is (total queries - failed queries) / total queries
	// over the measurement window.
	SLOAvailability = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_availability_ratio",
		Help: "Current availability ratio (0-1), target: 0.999",
	})

	SLOLatencyP95 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p95_seconds",
		Help: "Current p95 latency in seconds, target: 0.200",
	})

	SLOLatencyP99 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p99_seconds",
		Help: "Current p99 latency in seconds, target: 0.500",
	})

	// SLOErrorRate is failed queries / total queries over the
	// measurement window.
	SLOErrorRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_error_rate_ratio",
		Help: "Current error rate ratio (0-1), target: 0.001",
	})
)

// UpdateAvailability sets the availability gauge to the given ratio.
func UpdateAvailability(ratio float64) {
	SLOAvailability.Set(ratio)
}

// UpdateLatencyP95 sets the p95 latency gauge, in seconds.
func UpdateLatencyP95(seconds float64) {
	SLOLatencyP95.Set(seconds)
}

// UpdateLatencyP99 sets the p99 latency gauge, in seconds.
func UpdateLatencyP99(seconds float64) {
	SLOLatencyP99.Set(seconds)
}

// UpdateErrorRate sets the error rate gauge to the given ratio.
func UpdateErrorRate(ratio float64) {
	SLOErrorRate.Set(ratio)
}
