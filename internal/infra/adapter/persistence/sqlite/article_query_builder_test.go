package sqlite_test

import (
	"strings"
	"testing"

	"conduit-backend/internal/infra/adapter/persistence/sqlite"
	"conduit-backend/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestArticleQueryBuilder_BuildListQuery_NoFilters(t *testing.T) {
	builder := sqlite.NewArticleQueryBuilder()

	query, args := builder.BuildListQuery(repository.ArticleFilters{Limit: 20, Offset: 0})

	if strings.Contains(query, "INNER JOIN") {
		t.Errorf("query should not contain joins: %q", query)
	}
	if len(args) != 2 {
		t.Fatalf("len(args) = %d, want 2", len(args))
	}
	if args[0] != 20 || args[1] != 0 {
		t.Errorf("args = %v, want [20 0]", args)
	}
}

func TestArticleQueryBuilder_BuildListQuery_AllFilters(t *testing.T) {
	builder := sqlite.NewArticleQueryBuilder()
	filters := repository.ArticleFilters{
		Tag:       strPtr("go"),
		Author:    strPtr("alice"),
		Favorited: strPtr("bob"),
		Limit:     20,
		Offset:    40,
	}

	query, args := builder.BuildListQuery(filters)

	tagIdx := strings.Index(query, "articles_to_tags")
	authorIdx := strings.Index(query, "a.author_id = au.id")
	favIdx := strings.Index(query, "favorites")
	if tagIdx < 0 || authorIdx < 0 || favIdx < 0 {
		t.Fatalf("missing joins in query: %q", query)
	}
	if !(tagIdx < authorIdx && authorIdx < favIdx) {
		t.Errorf("joins out of order (tag=%d author=%d favorited=%d)", tagIdx, authorIdx, favIdx)
	}

	want := []interface{}{"go", "alice", "bob", 20, 40}
	if len(args) != len(want) {
		t.Fatalf("len(args) = %d, want %d", len(args), len(want))
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}
}

func TestArticleQueryBuilder_BuildListQuery_LimitOffsetAlwaysLast(t *testing.T) {
	builder := sqlite.NewArticleQueryBuilder()

	cases := []struct {
		name    string
		filters repository.ArticleFilters
	}{
		{"none", repository.ArticleFilters{Limit: 20, Offset: 0}},
		{"tag only", repository.ArticleFilters{Tag: strPtr("x"), Limit: 10, Offset: 5}},
		{"author+favorited", repository.ArticleFilters{Author: strPtr("y"), Favorited: strPtr("z"), Limit: 7, Offset: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, args := builder.BuildListQuery(tc.filters)
			if args[len(args)-2] != tc.filters.Limit || args[len(args)-1] != tc.filters.Offset {
				t.Errorf("trailing args = %v, want limit then offset", args[len(args)-2:])
			}
		})
	}
}
