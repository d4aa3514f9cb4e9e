package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts the total number of paginated listing requests.
	// Labels: operation (filter, feed), offset_range (offset bucket)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_pagination_requests_total",
			Help: "Total number of paginated listing requests",
		},
		[]string{"operation", "offset_range"},
	)

	// ErrorsTotal counts pagination validation failures.
	ErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_pagination_errors_total",
			Help: "Total number of pagination validation failures",
		},
	)
)

// RecordRequest records a paginated listing request metric.
func RecordRequest(operation string, offset int) {
	RequestsTotal.WithLabelValues(operation, getOffsetRangeBucket(offset)).Inc()
}

// RecordValidationError records a rejected pagination input.
func RecordValidationError() {
	ErrorsTotal.Inc()
}

// getOffsetRangeBucket buckets offsets to keep label cardinality bounded.
func getOffsetRangeBucket(offset int) string {
	switch {
	case offset == 0:
		return "0"
	case offset < 100:
		return "1-99"
	case offset < 1000:
		return "100-999"
	default:
		return "1000+"
	}
}
