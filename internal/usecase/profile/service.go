// Package profile provides use cases for resolving public user profiles.
package profile

import (
	"context"
	"errors"
	"fmt"

	"conduit-backend/internal/domain/entity"
	"conduit-backend/internal/repository"
)

// ErrProfileNotFound indicates that no identity exists for the
// requested username.
var ErrProfileNotFound = errors.New("profile not found")

// Service provides profile resolution use cases.
type Service struct {
	Repo repository.ProfileRepository
}

// NewService creates a profile service backed by the given repository.
func NewService(repo repository.ProfileRepository) *Service {
	return &Service{Repo: repo}
}

// Resolve returns the profile view of username relative to viewer.
// Without a viewer Following is always false and no relationship lookup
// is performed. Returns ErrProfileNotFound if no identity exists.
func (s *Service) Resolve(ctx context.Context, username string, viewer *entity.User) (*entity.Profile, error) {
	if err := entity.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("resolve profile: %w", err)
	}

	p, err := s.Repo.GetProfileByUsername(ctx, username, viewer)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	return p, nil
}

// UsernameTaken probes whether an identity exists for username.
// Absence is false, not an error; any other failure propagates.
func (s *Service) UsernameTaken(ctx context.Context, username string) (bool, error) {
	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("username taken: %w", err)
	}
	return user != nil, nil
}
