package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		duration  time.Duration
		err       error
	}{
		{name: "success", operation: "get_by_slug", duration: 3 * time.Millisecond, err: nil},
		{name: "failure", operation: "filter", duration: 10 * time.Millisecond, err: errors.New("boom")},
		{name: "zero duration", operation: "exists", duration: 0, err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordQuery(tt.operation, tt.duration, tt.err)
			})
		})
	}
}

func TestRecordTransaction(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordTransaction("create", "commit")
		RecordTransaction("create", "rollback")
		RecordTransaction("update", "commit")
	})
}

func TestRecordArticleCounters(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordArticleCreated()
		RecordArticleUpdated()
	})
}
