// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Storage query metrics (duration, count, result)
//   - Transaction outcome metrics (commit, rollback)
//   - Business metrics (articles created, updated)
//
// All metrics are automatically registered with the Prometheus default registry.
//
// Example usage:
//
//	import "conduit-backend/internal/observability/metrics"
//
//	func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) {
//	    start := time.Now()
//	    // ... execute query ...
//	    metrics.RecordQuery("get_by_slug", time.Since(start), err)
//	}
package metrics
