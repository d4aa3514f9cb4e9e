package entity

import (
	"fmt"
	"regexp"

	"conduit-backend/internal/utils/text"
)

const (
	// maxTitleLength bounds article titles to keep derived slugs indexable.
	maxTitleLength = 255

	// maxBodyLength bounds article bodies to prevent oversized rows.
	maxBodyLength = 1 << 20
)

// slugPattern matches lowercase ASCII slugs: alphanumeric runs joined by single hyphens.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateTitle validates an article title.
// Returns a ValidationError if the title is empty or too long.
func ValidateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if text.CountRunes(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

// ValidateBody validates an article body.
func ValidateBody(body string) error {
	if body == "" {
		return &ValidationError{Field: "body", Message: "body is required"}
	}
	if text.CountRunes(body) > maxBodyLength {
		return &ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("body must not exceed %d characters", maxBodyLength),
		}
	}
	return nil
}

// ValidateSlug validates a derived slug before it is used as a lookup key.
// Slugs are lowercase, ASCII-hyphenated, and never empty.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "slug is required"}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{Field: "slug", Message: "slug must be lowercase ASCII words joined by hyphens"}
	}
	return nil
}

// ValidateUsername validates a username used for profile and relationship lookups.
func ValidateUsername(username string) error {
	if username == "" {
		return &ValidationError{Field: "username", Message: "username is required"}
	}
	return nil
}
