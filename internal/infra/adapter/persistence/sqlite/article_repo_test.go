package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"conduit-backend/internal/domain/entity"
	sq "conduit-backend/internal/infra/adapter/persistence/sqlite"
	"conduit-backend/internal/repository"
)

var articleCols = []string{
	"id", "slug", "title", "description", "body",
	"created_at", "updated_at", "author_username",
}

func userRows(id int64, username string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "bio", "image"}).
		AddRow(id, username, "bio", "img")
}

func TestArticleRepo_Filter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	tag := "go"
	mock.ExpectQuery("FROM articles").
		WithArgs("go", 20, 0).
		WillReturnRows(sqlmock.NewRows(articleCols).
			AddRow(int64(1), "go-basics", "Go Basics", "d", "b", now, now, "alice"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, bio, image")).
		WithArgs("alice").
		WillReturnRows(userRows(7, "alice"))

	repo := sq.NewArticleRepo(db)
	got, err := repo.Filter(context.Background(),
		repository.ArticleFilters{Tag: &tag, Limit: 20, Offset: 0}, nil)
	if err != nil || len(got) != 1 {
		t.Fatalf("Filter err=%v len=%d", err, len(got))
	}
	if got[0].Author.Username != "alice" {
		t.Errorf("author = %q, want alice", got[0].Author.Username)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_GetBySlug_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("WHERE a.slug").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := sq.NewArticleRepo(db)
	got, err := repo.GetBySlug(context.Background(), "missing", nil)
	if err != nil {
		t.Fatalf("GetBySlug err=%v", err)
	}
	if got != nil {
		t.Fatalf("got = %+v, want nil", got)
	}
}

func TestArticleRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs("s", "T", "d", "b", "", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT OR IGNORE INTO tags")).
		WithArgs("go").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO articles_to_tags")).
		WithArgs(int64(1), "go").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, bio, image")).
		WithArgs("alice").
		WillReturnRows(userRows(7, "alice"))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice", "alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	repo := sq.NewArticleRepo(db)
	got, err := repo.Create(context.Background(), repository.CreateArticleInput{
		Slug: "s", Title: "T", Description: "d", Body: "b",
		Author: &entity.User{ID: 7, Username: "alice"}, Tags: []string{"go"},
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ID != 1 || got.Slug != "s" {
		t.Fatalf("got = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Create_TagLinkFailureRollsBack(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT OR IGNORE INTO tags")).
		WithArgs("go").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	repo := sq.NewArticleRepo(db)
	_, err := repo.Create(context.Background(), repository.CreateArticleInput{
		Slug: "s", Title: "T", Author: &entity.User{ID: 7, Username: "alice"},
		Tags: []string{"go"},
	})
	if !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("err = %v, want ErrConnDone", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE articles SET")).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	repo := sq.NewArticleRepo(db)
	body := "b"
	_, err := repo.Update(context.Background(),
		&entity.Article{Slug: "missing"},
		repository.UpdateArticleInput{Body: &body})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
