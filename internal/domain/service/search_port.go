package service

import (
	"context"

	"catalog/internal/domain/search"
)

// ProductSearcher is the read side of the product index. Errors from
// these methods trigger the database fallback path; they are never
// surfaced to callers directly.
type ProductSearcher interface {
	Search(ctx context.Context, filter search.ProductFilter) (*search.Page[search.ProductDocument], error)
	Suggest(ctx context.Context, facet search.Facet, query string, size int) ([]search.Suggestion, error)
}

// ArticleSearcher is the read side of the article index.
type ArticleSearcher interface {
	Search(ctx context.Context, query string, publishedOnly bool, limit, offset int) (*search.Page[search.ArticleDocument], error)
}

// UserSearcher is the read side of the user index.
type UserSearcher interface {
	Search(ctx context.Context, query string, limit, offset int) (*search.Page[search.UserDocument], error)
}
