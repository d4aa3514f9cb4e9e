// Package tracing provides OpenTelemetry tracing integration.
//
// It exposes the application tracer and helpers for wrapping storage
// operations in spans, so query latency can be attributed to individual
// repository operations. Exporter configuration (Jaeger, OTLP, ...) is the
// embedding process's responsibility; without a configured SDK the spans
// are no-ops.
//
// Example usage:
//
//	import "conduit-backend/internal/observability/tracing"
//
//	func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) {
//	    ctx, span := tracing.StartStorageSpan(ctx, "articles.get_by_slug")
//	    defer span.End()
//	    // ... execute query ...
//	}
package tracing
