package config

import (
	"fmt"
	"time"
)

// ValidateBackend accepts only the storage backends this project ships
// adapters for.
func ValidateBackend(backend string) error {
	switch backend {
	case "postgres", "sqlite":
		return nil
	default:
		return fmt.Errorf("invalid backend: %s (must be postgres or sqlite)", backend)
	}
}

// ValidateDuration checks that duration lies within [min, max]. The
// bounds are inclusive; a min greater than max is itself an error.
func ValidateDuration(duration, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}
	if duration < min {
		return fmt.Errorf("duration %v is below minimum %v", duration, min)
	}
	if duration > max {
		return fmt.Errorf("duration %v exceeds maximum %v", duration, max)
	}
	return nil
}

// ValidateIntRange checks that value lies within [min, max], both
// inclusive.
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}
	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}
	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}
	return nil
}

// ValidatePositiveDuration rejects zero or negative durations. Used for
// connection lifetimes and timeouts where zero would mean unlimited.
func ValidatePositiveDuration(duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", duration)
	}
	return nil
}
