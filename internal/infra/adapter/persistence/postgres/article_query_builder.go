// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"conduit-backend/internal/repository"
)

// articleColumns is the projection shared by every article read query.
// The author username comes from a correlated sub-select so the base
// query needs no join of its own.
const articleColumns = `a.id, a.slug, a.title, a.description, a.body, a.created_at, a.updated_at,
       (SELECT u.username FROM users u WHERE u.id = a.author_id) AS author_username`

// ArticleQueryBuilder builds listing queries for articles in PostgreSQL.
// Each active filter attaches one join and consumes the next sequential
// placeholder; inactive filters consume nothing, so indices never shift.
// Limit and offset are always the last two placeholders regardless of
// how many filters preceded them.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildListQuery builds the listing query and its ordered argument list
// from the given filters. Filters attach in the fixed order tag, author,
// favorited. Filter values are only ever bound through placeholders,
// never concatenated into the query text.
func (qb *ArticleQueryBuilder) BuildListQuery(filters repository.ArticleFilters) (query string, args []interface{}) {
	var joins []string
	paramIndex := 1

	if filters.Tag != nil {
		joins = append(joins, fmt.Sprintf(
			`INNER JOIN articles_to_tags att
    ON a.id = att.article_id
   AND att.tag = (SELECT t.tag FROM tags t WHERE t.tag = $%d)`, paramIndex))
		args = append(args, *filters.Tag)
		paramIndex++
	}

	if filters.Author != nil {
		joins = append(joins, fmt.Sprintf(
			`INNER JOIN users au
    ON a.author_id = au.id
   AND au.id = (SELECT u.id FROM users u WHERE u.username = $%d)`, paramIndex))
		args = append(args, *filters.Author)
		paramIndex++
	}

	if filters.Favorited != nil {
		joins = append(joins, fmt.Sprintf(
			`INNER JOIN favorites fav
    ON a.id = fav.article_id
   AND fav.user_id = (SELECT u.id FROM users u WHERE u.username = $%d)`, paramIndex))
		args = append(args, *filters.Favorited)
		paramIndex++
	}

	joinClause := ""
	if len(joins) > 0 {
		joinClause = "\n" + strings.Join(joins, "\n")
	}

	query = fmt.Sprintf(`
SELECT %s
FROM articles a%s
ORDER BY a.created_at DESC
LIMIT $%d OFFSET $%d`, articleColumns, joinClause, paramIndex, paramIndex+1)

	args = append(args, filters.Limit, filters.Offset)
	return query, args
}
