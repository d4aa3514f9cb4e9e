package pagination

import "fmt"

// Validate validates pagination parameters against the configuration.
// Returns an error if:
//   - limit is less than 1 or greater than config.MaxLimit
//   - offset is negative
func (p Params) Validate(config Config) error {
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", config.MaxLimit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must be zero or a positive integer")
	}
	return nil
}

