package slo

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metric families the refresher derives the gauges from. They are
// registered by the metrics package and populated on every repository
// call.
const (
	queriesMetricName  = "storage_queries_total"
	durationMetricName = "storage_query_duration_seconds"
)

// Refresher recomputes the SLO gauges from the storage metrics at a
// fixed interval. Availability and error rate come from the query
// counter's result label; the latency percentiles are estimated from
// the merged duration histogram buckets.
type Refresher struct {
	gatherer prometheus.Gatherer
	interval time.Duration
}

// NewRefresher builds a refresher reading from gatherer. A
// non-positive interval falls back to one minute.
func NewRefresher(gatherer prometheus.Gatherer, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Refresher{gatherer: gatherer, interval: interval}
}

// Run refreshes the gauges on every tick until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Refresh()
		}
	}
}

// Refresh recomputes the gauges once. When gathering fails or no
// queries have been recorded yet, the gauges keep their previous
// values.
func (r *Refresher) Refresh() {
	families, err := r.gatherer.Gather()
	if err != nil {
		return
	}

	var total, failed float64
	buckets := map[float64]uint64{}
	var observations uint64

	for _, family := range families {
		switch family.GetName() {
		case queriesMetricName:
			for _, m := range family.GetMetric() {
				v := m.GetCounter().GetValue()
				total += v
				if labelValue(m, "result") == "failure" {
					failed += v
				}
			}
		case durationMetricName:
			for _, m := range family.GetMetric() {
				h := m.GetHistogram()
				observations += h.GetSampleCount()
				for _, b := range h.GetBucket() {
					buckets[b.GetUpperBound()] += b.GetCumulativeCount()
				}
			}
		}
	}

	if total > 0 {
		UpdateAvailability((total - failed) / total)
		UpdateErrorRate(failed / total)
	}
	if p95, ok := bucketQuantile(0.95, buckets, observations); ok {
		UpdateLatencyP95(p95)
	}
	if p99, ok := bucketQuantile(0.99, buckets, observations); ok {
		UpdateLatencyP99(p99)
	}
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

// bucketQuantile returns the upper bound of the smallest histogram
// bucket containing the q-quantile. Reporting the bound rather than
// interpolating inside the bucket keeps the estimate conservative; the
// +Inf bucket degrades to the largest finite bound.
func bucketQuantile(q float64, buckets map[float64]uint64, count uint64) (float64, bool) {
	if count == 0 || len(buckets) == 0 {
		return 0, false
	}

	bounds := make([]float64, 0, len(buckets))
	for bound := range buckets {
		bounds = append(bounds, bound)
	}
	sort.Float64s(bounds)

	rank := q * float64(count)
	largestFinite := 0.0
	for _, bound := range bounds {
		if !math.IsInf(bound, 1) {
			largestFinite = bound
		}
		if float64(buckets[bound]) >= rank {
			if math.IsInf(bound, 1) {
				return largestFinite, largestFinite > 0
			}
			return bound, true
		}
	}
	return largestFinite, largestFinite > 0
}
