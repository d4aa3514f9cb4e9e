package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents limit/offset pagination parameters.
type Params struct {
	Limit  int // Items per request
	Offset int // Rows to skip
}

// ParseQueryParams parses pagination parameters from an HTTP request query string.
// Returns Params with defaults if parameters are missing.
//
// Query parameters:
//   - limit: Items per request (must be between 1 and config.MaxLimit)
//   - offset: Rows to skip (must be zero or positive)
//
// Returns an error if parameters are invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Limit:  config.DefaultLimit,
		Offset: config.DefaultOffset,
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return params, fmt.Errorf("invalid query parameter: offset must be zero or a positive integer")
		}
		params.Offset = offset
	}

	return params, nil
}
