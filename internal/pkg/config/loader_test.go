package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvString_NotSet(t *testing.T) {
	t.Setenv("TEST_DSN_ENV", "")

	value := LoadEnvString("TEST_DSN_ENV", "DATABASE_URL")
	assert.Equal(t, "DATABASE_URL", value)
}

func TestLoadEnvString_Set(t *testing.T) {
	t.Setenv("TEST_DSN_ENV", "REPLICA_URL")

	value := LoadEnvString("TEST_DSN_ENV", "DATABASE_URL")
	assert.Equal(t, "REPLICA_URL", value)
}

func TestLoadEnvWithFallback_ValidValue(t *testing.T) {
	t.Setenv("TEST_BACKEND", "sqlite")

	result := LoadEnvWithFallback("TEST_BACKEND", "postgres", ValidateBackend)

	assert.Equal(t, "sqlite", result.Value)
	assert.False(t, result.FallbackApplied)
	assert.Empty(t, result.Warnings)
}

func TestLoadEnvWithFallback_NotSet(t *testing.T) {
	t.Setenv("TEST_BACKEND", "")

	result := LoadEnvWithFallback("TEST_BACKEND", "postgres", ValidateBackend)

	assert.Equal(t, "postgres", result.Value)
	assert.False(t, result.FallbackApplied)
	assert.Empty(t, result.Warnings)
}

func TestLoadEnvWithFallback_InvalidValue(t *testing.T) {
	t.Setenv("TEST_BACKEND", "oracle")

	result := LoadEnvWithFallback("TEST_BACKEND", "postgres", ValidateBackend)

	assert.Equal(t, "postgres", result.Value)
	assert.True(t, result.FallbackApplied)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Invalid TEST_BACKEND='oracle'")
	assert.Contains(t, result.Warnings[0], "falling back to default 'postgres'")
}

func TestLoadEnvWithFallback_NoValidator(t *testing.T) {
	t.Setenv("TEST_ANY", "whatever")

	result := LoadEnvWithFallback("TEST_ANY", "default", nil)

	assert.Equal(t, "whatever", result.Value)
	assert.False(t, result.FallbackApplied)
}

func TestLoadEnvDuration_Valid(t *testing.T) {
	t.Setenv("TEST_LIFETIME", "30m")

	result := LoadEnvDuration("TEST_LIFETIME", time.Hour, ValidatePositiveDuration)

	assert.Equal(t, 30*time.Minute, result.Value)
	assert.False(t, result.FallbackApplied)
}

func TestLoadEnvDuration_NotSet(t *testing.T) {
	t.Setenv("TEST_LIFETIME", "")

	result := LoadEnvDuration("TEST_LIFETIME", time.Hour, ValidatePositiveDuration)

	assert.Equal(t, time.Hour, result.Value)
	assert.False(t, result.FallbackApplied)
}

func TestLoadEnvDuration_ParseError(t *testing.T) {
	t.Setenv("TEST_LIFETIME", "not-a-duration")

	result := LoadEnvDuration("TEST_LIFETIME", time.Hour, ValidatePositiveDuration)

	assert.Equal(t, time.Hour, result.Value)
	assert.True(t, result.FallbackApplied)
	assert.Len(t, result.Warnings, 1)
}

func TestLoadEnvDuration_ValidationFailure(t *testing.T) {
	t.Setenv("TEST_LIFETIME", "-5m")

	result := LoadEnvDuration("TEST_LIFETIME", time.Hour, ValidatePositiveDuration)

	assert.Equal(t, time.Hour, result.Value)
	assert.True(t, result.FallbackApplied)
}

func TestLoadEnvInt_Valid(t *testing.T) {
	t.Setenv("TEST_MAX_CONNS", "50")

	result := LoadEnvInt("TEST_MAX_CONNS", 25, func(v int) error {
		return ValidateIntRange(v, 1, 100)
	})

	assert.Equal(t, 50, result.Value)
	assert.False(t, result.FallbackApplied)
}

func TestLoadEnvInt_ParseError(t *testing.T) {
	t.Setenv("TEST_MAX_CONNS", "fifty")

	result := LoadEnvInt("TEST_MAX_CONNS", 25, nil)

	assert.Equal(t, 25, result.Value)
	assert.True(t, result.FallbackApplied)
	assert.Contains(t, result.Warnings[0], "invalid integer format")
}

func TestLoadEnvInt_OutOfRange(t *testing.T) {
	t.Setenv("TEST_MAX_CONNS", "500")

	result := LoadEnvInt("TEST_MAX_CONNS", 25, func(v int) error {
		return ValidateIntRange(v, 1, 100)
	})

	assert.Equal(t, 25, result.Value)
	assert.True(t, result.FallbackApplied)
}

func TestLoadEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		want         bool
		wantFallback bool
	}{
		{name: "true", envValue: "true", defaultValue: false, want: true},
		{name: "numeric true", envValue: "1", defaultValue: false, want: true},
		{name: "false", envValue: "false", defaultValue: true, want: false},
		{name: "numeric false", envValue: "0", defaultValue: true, want: false},
		{name: "not set uses default", envValue: "", defaultValue: true, want: true},
		{name: "garbage falls back", envValue: "yes-please", defaultValue: false, want: false, wantFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.envValue)

			result := LoadEnvBool("TEST_BOOL", tt.defaultValue)

			assert.Equal(t, tt.want, result.Value)
			assert.Equal(t, tt.wantFallback, result.FallbackApplied)
		})
	}
}
