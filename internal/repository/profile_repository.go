package repository

import (
	"context"

	"conduit-backend/internal/domain/entity"
)

type ProfileRepository interface {
	// GetUserByUsername retrieves an identity row by username.
	// Returns (nil, nil) if no identity exists.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetProfileByUsername resolves the profile view of username.
	// When viewer is non-nil a single relationship lookup computes
	// Following; without a viewer no lookup is performed and Following
	// stays false.
	// Returns entity.ErrNotFound if no identity exists for username.
	GetProfileByUsername(ctx context.Context, username string, viewer *entity.User) (*entity.Profile, error)
	// IsFollowing reports whether follower has a relationship edge to followee.
	IsFollowing(ctx context.Context, follower, followee string) (bool, error)
}
