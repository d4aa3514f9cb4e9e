// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and Profile, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a published article in the system.
// It is the denormalized view returned to callers: the stored row plus the
// resolved author profile and the viewer-relative social fields.
//
// Note: on read paths Image, Tags, Favorited and FavoritesCount are filled
// with zero values instead of being joined from storage. The tag and favorite
// tables are only consulted on the write path.
type Article struct {
	ID             int64
	Slug           string
	Title          string
	Description    string
	Body           string
	Image          string
	Tags           []string
	Author         Profile
	Favorited      bool
	FavoritesCount int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
