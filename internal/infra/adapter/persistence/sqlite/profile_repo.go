package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"conduit-backend/internal/domain/entity"
	"conduit-backend/internal/repository"
)

// ProfileRepo implements the ProfileRepository interface using SQLite.
type ProfileRepo struct {
	db *sql.DB
}

// NewProfileRepo creates a new SQLite-backed profile repository.
func NewProfileRepo(db *sql.DB) repository.ProfileRepository {
	return &ProfileRepo{db: db}
}

func (repo *ProfileRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
SELECT id, username, bio, image
FROM users
WHERE username = ?
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Bio, &user.Image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return &user, nil
}

func (repo *ProfileRepo) GetProfileByUsername(ctx context.Context, username string, viewer *entity.User) (*entity.Profile, error) {
	user, err := repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("GetProfileByUsername: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("GetProfileByUsername: %q: %w", username, entity.ErrNotFound)
	}

	profile := &entity.Profile{
		Username: user.Username,
		Bio:      user.Bio,
		Image:    user.Image,
	}
	if viewer != nil {
		following, err := repo.IsFollowing(ctx, viewer.Username, user.Username)
		if err != nil {
			return nil, fmt.Errorf("GetProfileByUsername: %w", err)
		}
		profile.Following = following
	}
	return profile, nil
}

func (repo *ProfileRepo) IsFollowing(ctx context.Context, follower, followee string) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1
    FROM followers_to_followings f
    INNER JOIN users fr ON f.follower_id = fr.id
    INNER JOIN users fe ON f.following_id = fe.id
    WHERE fr.username = ? AND fe.username = ?
)`
	var following bool
	err := repo.db.QueryRowContext(ctx, query, follower, followee).Scan(&following)
	if err != nil {
		return false, fmt.Errorf("IsFollowing: %w", err)
	}
	return following, nil
}
