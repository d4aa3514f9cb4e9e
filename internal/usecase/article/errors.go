// Package article provides use cases for the articles resource.
// It implements business logic for listing, creating and updating
// articles, including validation, slug derivation and permission
// checks, and delegates persistence to the repository layer.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// This error is typically returned when attempting to retrieve or update
	// an article that does not exist in the repository.
	ErrArticleNotFound = errors.New("article not found")

	// ErrDuplicateArticle indicates that an article with the same slug
	// already exists. This surfaces both the pre-create probe and the
	// storage uniqueness constraint.
	ErrDuplicateArticle = errors.New("article with this slug already exists")

	// ErrNotArticleAuthor indicates that the acting user is not the
	// author of the article and may not modify it.
	ErrNotArticleAuthor = errors.New("user is not the article author")

	// ErrInvalidPagination indicates malformed limit/offset input.
	// It is returned before any query is built.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)
