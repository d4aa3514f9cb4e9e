package pagination

import "testing"

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.DefaultLimit != 20 {
		t.Errorf("DefaultLimit = %d, want 20", config.DefaultLimit)
	}
	if config.DefaultOffset != 0 {
		t.Errorf("DefaultOffset = %d, want 0", config.DefaultOffset)
	}
	if config.MaxLimit != 100 {
		t.Errorf("MaxLimit = %d, want 100", config.MaxLimit)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "50")
	t.Setenv("PAGINATION_MAX_LIMIT", "200")

	config := LoadFromEnv()
	if config.DefaultLimit != 50 {
		t.Errorf("DefaultLimit = %d, want 50", config.DefaultLimit)
	}
	if config.MaxLimit != 200 {
		t.Errorf("MaxLimit = %d, want 200", config.MaxLimit)
	}
}

func TestLoadFromEnv_InvalidFallsBack(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "not-a-number")

	config := LoadFromEnv()
	if config.DefaultLimit != 20 {
		t.Errorf("DefaultLimit = %d, want fallback 20", config.DefaultLimit)
	}
}

func TestGetOffsetRangeBucket(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{0, "0"},
		{1, "1-99"},
		{99, "1-99"},
		{100, "100-999"},
		{999, "100-999"},
		{1000, "1000+"},
	}
	for _, tt := range tests {
		if got := getOffsetRangeBucket(tt.offset); got != tt.want {
			t.Errorf("getOffsetRangeBucket(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}
