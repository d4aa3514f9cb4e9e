package repository

import (
	"context"

	"conduit-backend/internal/domain/entity"
)

// Default pagination values applied when a caller does not specify them.
const (
	DefaultArticlesLimit  = 20
	DefaultArticlesOffset = 0
)

// ArticleFilters contains optional filters for article listing.
// Nil fields are inactive and consume no query placeholder.
type ArticleFilters struct {
	Tag       *string // Optional: only articles carrying this tag
	Author    *string // Optional: only articles written by this username
	Favorited *string // Optional: only articles favorited by this username
	Limit     int
	Offset    int
}

// CreateArticleInput carries the fields persisted when an article is created.
// Slug is derived from Title by the caller and validated unique beforehand;
// the storage unique constraint is the final guard against races.
type CreateArticleInput struct {
	Slug        string
	Title       string
	Description string
	Body        string
	Image       string
	Author      *entity.User
	Tags        []string
}

// UpdateArticleInput carries a partial update. Nil fields retain the stored
// value; Slug is only set when the caller recomputed it from a new Title.
type UpdateArticleInput struct {
	Slug        *string
	Title       *string
	Description *string
	Body        *string
	Image       *string
}

type ArticleRepository interface {
	// Filter retrieves articles matching the given optional filters,
	// assembled with the author profile resolved relative to viewer.
	// Filters are applied in the fixed order tag, author, favorited;
	// limit and offset are always the last two bound parameters.
	Filter(ctx context.Context, filters ArticleFilters, viewer *entity.User) ([]*entity.Article, error)
	// Feed retrieves a page of articles without filters, newest first.
	Feed(ctx context.Context, limit, offset int, viewer *entity.User) ([]*entity.Article, error)
	// GetBySlug retrieves a single article by its slug.
	// Returns (nil, nil) if the article is not found.
	GetBySlug(ctx context.Context, slug string, viewer *entity.User) (*entity.Article, error)
	// Create inserts the article row, lazily creates its tags, and links
	// them, all inside one transaction. Returns the assembled article with
	// storage-authoritative timestamps.
	// Returns entity.ErrAlreadyExists when the slug is already taken.
	Create(ctx context.Context, input CreateArticleInput) (*entity.Article, error)
	// Update applies a coalescing partial update inside a transaction and
	// returns a copy of article with the changed fields and the
	// storage-authoritative updated_at.
	Update(ctx context.Context, article *entity.Article, changes UpdateArticleInput) (*entity.Article, error)
}
