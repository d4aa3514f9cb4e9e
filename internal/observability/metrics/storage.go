package metrics

import "time"

// RecordQuery records a completed storage operation.
// The result label is "success" or "failure" depending on err.
func RecordQuery(operation string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	QueriesTotal.WithLabelValues(operation, result).Inc()
	QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordTransaction records the outcome of a write transaction.
// Outcome should be either "commit" or "rollback".
func RecordTransaction(operation, outcome string) {
	TransactionsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordArticleCreated records a successfully created article.
func RecordArticleCreated() {
	ArticlesCreatedTotal.Inc()
}

// RecordArticleUpdated records a successfully updated article.
func RecordArticleUpdated() {
	ArticlesUpdatedTotal.Inc()
}
