// Package sqlite provides SQLite implementations of repository interfaces.
package sqlite

import (
	"fmt"
	"strings"

	"conduit-backend/internal/repository"
)

const articleColumns = `a.id, a.slug, a.title, a.description, a.body, a.created_at, a.updated_at,
       (SELECT u.username FROM users u WHERE u.id = a.author_id) AS author_username`

// ArticleQueryBuilder builds listing queries for articles in SQLite.
// SQLite uses positional `?` placeholders, so ordering alone carries the
// binding contract: filters attach in the fixed order tag, author,
// favorited, and limit/offset are always the last two arguments.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildListQuery builds the listing query and its ordered argument list
// from the given filters.
func (qb *ArticleQueryBuilder) BuildListQuery(filters repository.ArticleFilters) (query string, args []interface{}) {
	var joins []string

	if filters.Tag != nil {
		joins = append(joins,
			`INNER JOIN articles_to_tags att
    ON a.id = att.article_id
   AND att.tag = (SELECT t.tag FROM tags t WHERE t.tag = ?)`)
		args = append(args, *filters.Tag)
	}

	if filters.Author != nil {
		joins = append(joins,
			`INNER JOIN users au
    ON a.author_id = au.id
   AND au.id = (SELECT u.id FROM users u WHERE u.username = ?)`)
		args = append(args, *filters.Author)
	}

	if filters.Favorited != nil {
		joins = append(joins,
			`INNER JOIN favorites fav
    ON a.id = fav.article_id
   AND fav.user_id = (SELECT u.id FROM users u WHERE u.username = ?)`)
		args = append(args, *filters.Favorited)
	}

	joinClause := ""
	if len(joins) > 0 {
		joinClause = "\n" + strings.Join(joins, "\n")
	}

	query = fmt.Sprintf(`
SELECT %s
FROM articles a%s
ORDER BY a.created_at DESC
LIMIT ? OFFSET ?`, articleColumns, joinClause)

	args = append(args, filters.Limit, filters.Offset)
	return query, args
}
