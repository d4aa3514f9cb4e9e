package config

import (
	"fmt"
	"os"
	"time"
)

// ConfigLoadResult is what every env loader returns. Value holds the
// loaded (or fallback) value, Warnings carries one message per fallback
// applied, and FallbackApplied reports whether the default was used
// because the environment value failed to parse or validate.
//
// Loaders never return errors. A bad environment value degrades to the
// default with a warning so the process still starts.
type ConfigLoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

// LoadEnvString returns the environment value for envKey, or
// defaultValue when the variable is unset or empty. No validation.
func LoadEnvString(envKey, defaultValue string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	return defaultValue
}

func loaded(value interface{}) ConfigLoadResult {
	return ConfigLoadResult{Value: value}
}

func fallback(envKey, raw string, reason error, defaultValue interface{}) ConfigLoadResult {
	return ConfigLoadResult{
		Value:           defaultValue,
		Warnings:        []string{fmt.Sprintf("Invalid %s='%s': %v, falling back to default '%v'", envKey, raw, reason, defaultValue)},
		FallbackApplied: true,
	}
}

// LoadEnvWithFallback loads a string from envKey and validates it with
// validator (nil skips validation). An unset variable yields the default
// silently; a value that fails validation yields the default with a
// warning.
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult {
	value := os.Getenv(envKey)
	if value == "" {
		return loaded(defaultValue)
	}
	if validator != nil {
		if err := validator(value); err != nil {
			return fallback(envKey, value, err, defaultValue)
		}
	}
	return loaded(value)
}

// LoadEnvDuration loads a time.Duration from envKey. The value must be
// a Go duration string ("30s", "1h30m"). Parse or validation failure
// falls back to defaultValue with a warning.
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return loaded(defaultValue)
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback(envKey, raw, err, defaultValue)
	}
	if validator != nil {
		if err := validator(d); err != nil {
			return fallback(envKey, raw, err, defaultValue)
		}
	}
	return loaded(d)
}

// LoadEnvInt loads an integer from envKey. Parse or validation failure
// falls back to defaultValue with a warning.
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return loaded(defaultValue)
	}
	var n int
	if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
		return fallback(envKey, raw, fmt.Errorf("invalid integer format"), defaultValue)
	}
	if validator != nil {
		if err := validator(n); err != nil {
			return fallback(envKey, raw, err, defaultValue)
		}
	}
	return loaded(n)
}

// LoadEnvBool loads a boolean from envKey. Accepted spellings are the
// strconv.ParseBool set ("1", "t", "true", "0", "f", "false" and their
// upper-case forms). Anything else falls back to defaultValue with a
// warning.
func LoadEnvBool(envKey string, defaultValue bool) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return loaded(defaultValue)
	}
	switch raw {
	case "1", "t", "T", "true", "TRUE", "True":
		return loaded(true)
	case "0", "f", "F", "false", "FALSE", "False":
		return loaded(false)
	default:
		return fallback(envKey, raw, fmt.Errorf("invalid boolean format, expected 'true' or 'false'"), defaultValue)
	}
}
