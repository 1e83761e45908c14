package usecase

import (
	"context"

	"catalog/internal/domain/search"
)

// Autosuggest bounds. Queries shorter than the minimum are rejected;
// sizes above the cap are clamped.
const (
	SuggestMinQueryLength = 3
	SuggestDefaultSize    = 10
	SuggestMaxSize        = 50
)

// SuggestResult is one autosuggest answer with its read path.
type SuggestResult struct {
	Suggestions []search.Suggestion
	Outcome     Outcome
}

// SuggestUsecase serves typeahead suggestions per facet dimension.
type SuggestUsecase interface {
	SuggestCategories(ctx context.Context, query string, size int) (*SuggestResult, error)
	SuggestBrands(ctx context.Context, query string, size int) (*SuggestResult, error)
	SuggestTags(ctx context.Context, query string, size int) (*SuggestResult, error)
}
