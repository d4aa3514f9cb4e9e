package article

import (
	"context"
	"errors"
	"fmt"

	"conduit-backend/internal/common/pagination"
	"conduit-backend/internal/domain/entity"
	"conduit-backend/internal/pkg/slug"
	"conduit-backend/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// The slug is derived from Title, never supplied by the caller.
type CreateInput struct {
	Title       string
	Description string
	Body        string
	Image       string
	Tags        []string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated. A new title recomputes the slug.
type UpdateInput struct {
	Title       *string
	Description *string
	Body        *string
	Image       *string
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo       repository.ArticleRepository
	Pagination pagination.Config
}

// NewService creates an article service with the given repository and
// pagination configuration.
func NewService(repo repository.ArticleRepository, cfg pagination.Config) *Service {
	return &Service{Repo: repo, Pagination: cfg}
}

// Filter retrieves articles matching the optional filter dimensions,
// assembled relative to viewer. Zero limit falls back to the configured
// default; malformed pagination is rejected before any query is built.
func (s *Service) Filter(ctx context.Context, filters repository.ArticleFilters, viewer *entity.User) ([]*entity.Article, error) {
	params, err := s.normalizePagination(filters.Limit, filters.Offset, "article_filter")
	if err != nil {
		return nil, err
	}
	filters.Limit = params.Limit
	filters.Offset = params.Offset

	articles, err := s.Repo.Filter(ctx, filters, viewer)
	if err != nil {
		return nil, fmt.Errorf("filter articles: %w", err)
	}
	return articles, nil
}

// Feed retrieves a page of articles for the requesting user, newest first.
func (s *Service) Feed(ctx context.Context, limit, offset int, viewer *entity.User) ([]*entity.Article, error) {
	params, err := s.normalizePagination(limit, offset, "article_feed")
	if err != nil {
		return nil, err
	}

	articles, err := s.Repo.Feed(ctx, params.Limit, params.Offset, viewer)
	if err != nil {
		return nil, fmt.Errorf("feed articles: %w", err)
	}
	return articles, nil
}

// GetBySlug retrieves a single article by its slug.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) GetBySlug(ctx context.Context, articleSlug string, viewer *entity.User) (*entity.Article, error) {
	found, err := s.Repo.GetBySlug(ctx, articleSlug, viewer)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if found == nil {
		return nil, ErrArticleNotFound
	}
	return found, nil
}

// Create validates the input, derives the slug from the title and
// persists the article with its tags in one transaction.
// Returns ErrDuplicateArticle when the derived slug is already taken,
// whether by the pre-create probe or by the storage constraint.
func (s *Service) Create(ctx context.Context, input CreateInput, author *entity.User) (*entity.Article, error) {
	if err := entity.ValidateTitle(input.Title); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	if err := entity.ValidateBody(input.Body); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	articleSlug := slug.Make(input.Title)
	// Symbols-only or all-stripped titles slugify to nothing; such an
	// article would have no reachable lookup key.
	if err := entity.ValidateSlug(articleSlug); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	taken, err := s.Exists(ctx, articleSlug)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	if taken {
		return nil, ErrDuplicateArticle
	}

	created, err := s.Repo.Create(ctx, repository.CreateArticleInput{
		Slug:        articleSlug,
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		Image:       input.Image,
		Author:      author,
		Tags:        input.Tags,
	})
	if err != nil {
		// The probe above cannot rule out a concurrent create racing on
		// the same slug; the storage constraint is the final guard.
		if errors.Is(err, entity.ErrAlreadyExists) {
			return nil, ErrDuplicateArticle
		}
		return nil, fmt.Errorf("create article: %w", err)
	}
	return created, nil
}

// Update applies a partial update to the article identified by slug on
// behalf of actor. Provided fields overwrite, omitted fields are kept;
// a new title recomputes the slug.
// Returns ErrArticleNotFound if the article does not exist and
// ErrNotArticleAuthor if actor did not write it.
func (s *Service) Update(ctx context.Context, articleSlug string, changes UpdateInput, actor *entity.User) (*entity.Article, error) {
	current, err := s.GetBySlug(ctx, articleSlug, actor)
	if err != nil {
		return nil, err
	}
	if !s.CanModify(current, actor) {
		return nil, ErrNotArticleAuthor
	}

	input := repository.UpdateArticleInput{
		Title:       changes.Title,
		Description: changes.Description,
		Body:        changes.Body,
		Image:       changes.Image,
	}
	if changes.Title != nil {
		if err := entity.ValidateTitle(*changes.Title); err != nil {
			return nil, fmt.Errorf("update article: %w", err)
		}
		newSlug := slug.Make(*changes.Title)
		if err := entity.ValidateSlug(newSlug); err != nil {
			return nil, fmt.Errorf("update article: %w", err)
		}
		input.Slug = &newSlug
	}
	if changes.Body != nil {
		if err := entity.ValidateBody(*changes.Body); err != nil {
			return nil, fmt.Errorf("update article: %w", err)
		}
	}

	updated, err := s.Repo.Update(ctx, current, input)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		if errors.Is(err, entity.ErrAlreadyExists) {
			return nil, ErrDuplicateArticle
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return updated, nil
}

// Exists probes the read path for slug. Not found is false, not an error;
// any other failure propagates.
func (s *Service) Exists(ctx context.Context, articleSlug string) (bool, error) {
	found, err := s.Repo.GetBySlug(ctx, articleSlug, nil)
	if err != nil {
		return false, fmt.Errorf("article exists: %w", err)
	}
	return found != nil, nil
}

// CanModify reports whether actor may modify the article. Only the
// author may; the comparison is exact and case-sensitive.
func (s *Service) CanModify(a *entity.Article, actor *entity.User) bool {
	if a == nil || actor == nil {
		return false
	}
	return a.Author.Username == actor.Username
}

// normalizePagination applies defaults for unset values and rejects
// malformed input, recording the outcome in the pagination metrics.
func (s *Service) normalizePagination(limit, offset int, operation string) (pagination.Params, error) {
	params := pagination.Params{Limit: limit, Offset: offset}
	if params.Limit == 0 {
		params.Limit = s.Pagination.DefaultLimit
	}
	if err := params.Validate(s.Pagination); err != nil {
		pagination.RecordValidationError()
		return pagination.Params{}, fmt.Errorf("%w: %v", ErrInvalidPagination, err)
	}
	pagination.RecordRequest(operation, params.Offset)
	return params, nil
}
