package usecase

import (
	"context"

	"catalog/internal/domain/search"
)

// Search target types accepted by SearchInput.Type.
const (
	SearchTypeUsers    = "users"
	SearchTypeArticles = "articles"
	SearchTypeBoth     = "both"
)

// SearchInput carries the cross-entity search parameters. When Type is
// "both" the limit is split evenly between the two entity types.
type SearchInput struct {
	Query         string
	Type          string
	PublishedOnly bool
	Limit         int
	Offset        int
}

// SearchSection is one entity type's slice of a cross-entity search
// answer, with its own read path: one index can be degraded while the
// other is healthy.
type SearchSection[T any] struct {
	Items   []T
	Total   int64
	Outcome Outcome
}

// SearchOutput is the combined result. Sections not requested stay nil.
type SearchOutput struct {
	Users    *SearchSection[search.UserDocument]
	Articles *SearchSection[search.ArticleDocument]
}

// SearchUsecase runs full-text search across users and articles.
type SearchUsecase interface {
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
	SearchUsers(ctx context.Context, query string, limit, offset int) (*SearchSection[search.UserDocument], error)
	SearchArticles(ctx context.Context, query string, publishedOnly bool, limit, offset int) (*SearchSection[search.ArticleDocument], error)
}
