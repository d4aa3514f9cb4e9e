package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Storage metrics track query patterns and performance against the database
var (
	// QueriesTotal counts storage operations by name and result
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_queries_total",
			Help: "Total number of storage operations",
		},
		[]string{"operation", "result"},
	)

	// QueryDuration measures storage operation duration in seconds
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_query_duration_seconds",
			Help:    "Storage operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// TransactionsTotal counts write transactions by outcome
	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_transactions_total",
			Help: "Total number of write transactions by outcome",
		},
		[]string{"operation", "outcome"},
	)
)

// Business metrics track article lifecycle events
var (
	// ArticlesCreatedTotal counts successfully created articles
	ArticlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles created",
		},
	)

	// ArticlesUpdatedTotal counts successfully updated articles
	ArticlesUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_updated_total",
			Help: "Total number of articles updated",
		},
	)
)
