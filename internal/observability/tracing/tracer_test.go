package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTracer(t *testing.T) {
	assert.NotNil(t, GetTracer())
}

func TestStartStorageSpan(t *testing.T) {
	ctx, span := StartStorageSpan(context.Background(), "articles.get_by_slug")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
	span.End()
}

func TestEndStorageSpan(t *testing.T) {
	// Spans are no-ops without an SDK; both paths must be safe.
	_, span := StartStorageSpan(context.Background(), "articles.filter")
	assert.NotPanics(t, func() { EndStorageSpan(span, nil) })

	_, span = StartStorageSpan(context.Background(), "articles.create")
	assert.NotPanics(t, func() { EndStorageSpan(span, errors.New("boom")) })
}
