package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"conduit-backend/internal/domain/entity"
	"conduit-backend/internal/observability/metrics"
	"conduit-backend/internal/observability/tracing"
	"conduit-backend/internal/repository"
)

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
	profiles     repository.ProfileRepository
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
		profiles:     NewProfileRepo(db),
	}
}

// articleRow is the scan target for the shared listing projection.
type articleRow struct {
	id             int64
	slug           string
	title          string
	description    string
	body           string
	createdAt      time.Time
	updatedAt      time.Time
	authorUsername string
}

func (repo *ArticleRepo) Filter(ctx context.Context, filters repository.ArticleFilters, viewer *entity.User) (_ []*entity.Article, err error) {
	ctx, span := tracing.StartStorageSpan(ctx, "article.filter")
	start := time.Now()
	defer func() {
		metrics.RecordQuery("article.filter", time.Since(start), err)
		tracing.EndStorageSpan(span, err)
	}()

	query, args := repo.queryBuilder.BuildListQuery(filters)
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Filter: %w", err)
	}
	scanned, err := scanArticleRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Filter: %w", err)
	}
	return repo.assembleAll(ctx, scanned, viewer)
}

func (repo *ArticleRepo) Feed(ctx context.Context, limit, offset int, viewer *entity.User) (_ []*entity.Article, err error) {
	ctx, span := tracing.StartStorageSpan(ctx, "article.feed")
	start := time.Now()
	defer func() {
		metrics.RecordQuery("article.feed", time.Since(start), err)
		tracing.EndStorageSpan(span, err)
	}()

	const query = `
SELECT ` + articleColumns + `
FROM articles a
ORDER BY a.created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("Feed: %w", err)
	}
	scanned, err := scanArticleRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Feed: %w", err)
	}
	return repo.assembleAll(ctx, scanned, viewer)
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string, viewer *entity.User) (_ *entity.Article, err error) {
	ctx, span := tracing.StartStorageSpan(ctx, "article.get_by_slug")
	start := time.Now()
	defer func() {
		metrics.RecordQuery("article.get_by_slug", time.Since(start), err)
		tracing.EndStorageSpan(span, err)
	}()

	const query = `
SELECT ` + articleColumns + `
FROM articles a
WHERE a.slug = $1
LIMIT 1`
	var row articleRow
	err = repo.db.QueryRowContext(ctx, query, slug).
		Scan(&row.id, &row.slug, &row.title, &row.description, &row.body,
			&row.createdAt, &row.updatedAt, &row.authorUsername)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return repo.articleFromRow(ctx, row, viewer)
}

// Create inserts the article row, lazily creates its tags and links them,
// all inside one transaction. Any failure rolls the whole transaction back.
func (repo *ArticleRepo) Create(ctx context.Context, input repository.CreateArticleInput) (_ *entity.Article, err error) {
	ctx, span := tracing.StartStorageSpan(ctx, "article.create")
	start := time.Now()
	defer func() {
		metrics.RecordQuery("article.create", time.Since(start), err)
		tracing.EndStorageSpan(span, err)
	}()

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Create: begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
			metrics.RecordTransaction("article_create", "rollback")
		}
	}()

	const insertArticle = `
INSERT INTO articles (slug, title, description, body, image, author_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`
	var (
		id                   int64
		createdAt, updatedAt time.Time
	)
	err = tx.QueryRowContext(ctx, insertArticle,
		input.Slug, input.Title, input.Description, input.Body, input.Image, input.Author.ID).
		Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("Create: slug %q: %w", input.Slug, entity.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("Create: insert article: %w", err)
	}

	for _, tag := range input.Tags {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO tags (tag) VALUES ($1) ON CONFLICT (tag) DO NOTHING`, tag); err != nil {
			return nil, fmt.Errorf("Create: insert tag: %w", err)
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO articles_to_tags (article_id, tag) VALUES ($1, $2)`, id, tag); err != nil {
			return nil, fmt.Errorf("Create: link tag: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("Create: commit: %w", err)
	}
	committed = true
	metrics.RecordTransaction("article_create", "commit")
	metrics.RecordArticleCreated()

	author, err := repo.profiles.GetProfileByUsername(ctx, input.Author.Username, input.Author)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	tags := make([]string, len(input.Tags))
	copy(tags, input.Tags)

	return &entity.Article{
		ID:          id,
		Slug:        input.Slug,
		Title:       input.Title,
		Description: input.Description,
		Body:        input.Body,
		Image:       input.Image,
		Tags:        tags,
		Author:      *author,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// Update applies a coalescing partial update keyed by the article's
// current slug. Nil change fields keep the stored value; updated_at is
// set by storage and read back, never client-computed.
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article, changes repository.UpdateArticleInput) (_ *entity.Article, err error) {
	ctx, span := tracing.StartStorageSpan(ctx, "article.update")
	start := time.Now()
	defer func() {
		metrics.RecordQuery("article.update", time.Since(start), err)
		tracing.EndStorageSpan(span, err)
	}()

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Update: begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
			metrics.RecordTransaction("article_update", "rollback")
		}
	}()

	const updateArticle = `
UPDATE articles SET
       slug        = COALESCE($1, slug),
       title       = COALESCE($2, title),
       description = COALESCE($3, description),
       body        = COALESCE($4, body),
       image       = COALESCE($5, image),
       updated_at  = now()
WHERE slug = $6
RETURNING updated_at`
	var updatedAt time.Time
	err = tx.QueryRowContext(ctx, updateArticle,
		changes.Slug, changes.Title, changes.Description, changes.Body, changes.Image,
		article.Slug).
		Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("Update: slug %q: %w", article.Slug, entity.ErrNotFound)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("Update: %w", entity.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("Update: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("Update: commit: %w", err)
	}
	committed = true
	metrics.RecordTransaction("article_update", "commit")
	metrics.RecordArticleUpdated()

	updated := *article
	if changes.Slug != nil {
		updated.Slug = *changes.Slug
	}
	if changes.Title != nil {
		updated.Title = *changes.Title
	}
	if changes.Description != nil {
		updated.Description = *changes.Description
	}
	if changes.Body != nil {
		updated.Body = *changes.Body
	}
	if changes.Image != nil {
		updated.Image = *changes.Image
	}
	updated.UpdatedAt = updatedAt
	return &updated, nil
}

func scanArticleRows(rows *sql.Rows) ([]articleRow, error) {
	defer func() { _ = rows.Close() }()

	result := make([]articleRow, 0, repository.DefaultArticlesLimit)
	for rows.Next() {
		var row articleRow
		if err := rows.Scan(&row.id, &row.slug, &row.title, &row.description, &row.body,
			&row.createdAt, &row.updatedAt, &row.authorUsername); err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (repo *ArticleRepo) assembleAll(ctx context.Context, scanned []articleRow, viewer *entity.User) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0, len(scanned))
	for _, row := range scanned {
		article, err := repo.articleFromRow(ctx, row, viewer)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// articleFromRow assembles the listing entity from a scanned row.
// Image, Tags, Favorited and FavoritesCount are filled with defaults;
// the read path does not join the tag and favorite tables.
func (repo *ArticleRepo) articleFromRow(ctx context.Context, row articleRow, viewer *entity.User) (*entity.Article, error) {
	author, err := repo.profiles.GetProfileByUsername(ctx, row.authorUsername, viewer)
	if err != nil {
		return nil, err
	}
	return &entity.Article{
		ID:          row.id,
		Slug:        row.slug,
		Title:       row.title,
		Description: row.description,
		Body:        row.body,
		Image:       "",
		Tags:        []string{},
		Author:      *author,
		CreatedAt:   row.createdAt,
		UpdatedAt:   row.updatedAt,
	}, nil
}
