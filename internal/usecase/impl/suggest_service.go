package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/search"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"
)

type suggestService struct {
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	tagRepo      repository.TagRepository
	searcher     service.ProductSearcher
	logger       *slog.Logger
}

// NewSuggestService creates a new autosuggest service instance.
func NewSuggestService(
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	tagRepo repository.TagRepository,
	searcher service.ProductSearcher,
	logger *slog.Logger,
) usecase.SuggestUsecase {
	return &suggestService{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		tagRepo:      tagRepo,
		searcher:     searcher,
		logger:       logger,
	}
}

func (s *suggestService) SuggestCategories(ctx context.Context, query string, size int) (*usecase.SuggestResult, error) {
	return s.suggest(ctx, search.FacetCategory, s.categoryRepo.Suggest, query, size)
}

func (s *suggestService) SuggestBrands(ctx context.Context, query string, size int) (*usecase.SuggestResult, error) {
	return s.suggest(ctx, search.FacetBrand, s.brandRepo.Suggest, query, size)
}

func (s *suggestService) SuggestTags(ctx context.Context, query string, size int) (*usecase.SuggestResult, error) {
	return s.suggest(ctx, search.FacetTag, s.tagRepo.Suggest, query, size)
}

// suggest validates and clamps, then runs the facet aggregation with
// the repository substring query as fallback.
func (s *suggestService) suggest(
	ctx context.Context,
	facet search.Facet,
	repoSuggest func(ctx context.Context, query string, limit int) ([]search.Suggestion, error),
	query string,
	size int,
) (*usecase.SuggestResult, error) {
	if utf8.RuneCountInString(query) < usecase.SuggestMinQueryLength {
		return nil, domainerrors.ErrQueryTooShort
	}

	if size <= 0 {
		size = usecase.SuggestDefaultSize
	}
	if size > usecase.SuggestMaxSize {
		size = usecase.SuggestMaxSize
	}

	suggestions, outcome, err := runWithFallback(ctx, s.logger, "suggest "+string(facet),
		func(ctx context.Context) ([]search.Suggestion, error) {
			return s.searcher.Suggest(ctx, facet, query, size)
		},
		func(ctx context.Context) ([]search.Suggestion, error) {
			return repoSuggest(ctx, query, size)
		},
	)
	if err != nil {
		return nil, err
	}

	return &usecase.SuggestResult{
		Suggestions: suggestions,
		Outcome:     outcome,
	}, nil
}
