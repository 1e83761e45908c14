package impl

import (
	"context"
	"log/slog"

	"catalog/internal/domain/repository"
	"catalog/internal/domain/search"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"
)

type searchService struct {
	userRepo        repository.UserRepository
	articleRepo     repository.ArticleRepository
	userSearcher    service.UserSearcher
	articleSearcher service.ArticleSearcher
	logger          *slog.Logger
}

// NewSearchService creates a new cross-entity search service instance.
func NewSearchService(
	userRepo repository.UserRepository,
	articleRepo repository.ArticleRepository,
	userSearcher service.UserSearcher,
	articleSearcher service.ArticleSearcher,
	logger *slog.Logger,
) usecase.SearchUsecase {
	return &searchService{
		userRepo:        userRepo,
		articleRepo:     articleRepo,
		userSearcher:    userSearcher,
		articleSearcher: articleSearcher,
		logger:          logger,
	}
}

// Search runs full-text search for the requested entity types. With
// type "both" the limit is split evenly between users and articles.
// Each section degrades to the database independently.
func (s *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	searchType := input.Type
	if searchType == "" {
		searchType = usecase.SearchTypeBoth
	}

	output := &usecase.SearchOutput{}

	if searchType == usecase.SearchTypeBoth {
		// Odd limits give the articles section the extra slot.
		userLimit := limit / 2
		if userLimit < 1 {
			userLimit = 1
		}
		articleLimit := limit - userLimit
		if articleLimit < 1 {
			articleLimit = 1
		}

		users, err := s.SearchUsers(ctx, input.Query, userLimit, input.Offset)
		if err != nil {
			return nil, err
		}
		articles, err := s.SearchArticles(ctx, input.Query, input.PublishedOnly, articleLimit, input.Offset)
		if err != nil {
			return nil, err
		}

		output.Users = users
		output.Articles = articles

		return output, nil
	}

	switch searchType {
	case usecase.SearchTypeUsers:
		users, err := s.SearchUsers(ctx, input.Query, limit, input.Offset)
		if err != nil {
			return nil, err
		}
		output.Users = users
	case usecase.SearchTypeArticles:
		articles, err := s.SearchArticles(ctx, input.Query, input.PublishedOnly, limit, input.Offset)
		if err != nil {
			return nil, err
		}
		output.Articles = articles
	}

	return output, nil
}

// SearchUsers runs the user index query with database fallback.
func (s *searchService) SearchUsers(ctx context.Context, query string, limit, offset int) (*usecase.SearchSection[search.UserDocument], error) {
	page, outcome, err := runWithFallback(ctx, s.logger, "user search",
		func(ctx context.Context) (*search.Page[search.UserDocument], error) {
			return s.userSearcher.Search(ctx, query, limit, offset)
		},
		func(ctx context.Context) (*search.Page[search.UserDocument], error) {
			users, total, err := s.userRepo.Search(ctx, query, limit, offset)
			if err != nil {
				return nil, err
			}

			fallbackPage := &search.Page[search.UserDocument]{
				Items: make([]search.UserDocument, 0, len(users)),
				Total: total,
			}
			for _, user := range users {
				fallbackPage.Items = append(fallbackPage.Items, search.NewUserDocument(user))
			}

			return fallbackPage, nil
		},
	)
	if err != nil {
		return nil, err
	}

	return &usecase.SearchSection[search.UserDocument]{
		Items:   page.Items,
		Total:   page.Total,
		Outcome: outcome,
	}, nil
}

// SearchArticles runs the article index query with database fallback.
func (s *searchService) SearchArticles(ctx context.Context, query string, publishedOnly bool, limit, offset int) (*usecase.SearchSection[search.ArticleDocument], error) {
	page, outcome, err := runWithFallback(ctx, s.logger, "article search",
		func(ctx context.Context) (*search.Page[search.ArticleDocument], error) {
			return s.articleSearcher.Search(ctx, query, publishedOnly, limit, offset)
		},
		func(ctx context.Context) (*search.Page[search.ArticleDocument], error) {
			articles, total, err := s.articleRepo.Search(ctx, query, limit, offset, publishedOnly)
			if err != nil {
				return nil, err
			}

			fallbackPage := &search.Page[search.ArticleDocument]{
				Items: make([]search.ArticleDocument, 0, len(articles)),
				Total: total,
			}
			for _, article := range articles {
				fallbackPage.Items = append(fallbackPage.Items, search.NewArticleDocument(article))
			}

			return fallbackPage, nil
		},
	)
	if err != nil {
		return nil, err
	}

	return &usecase.SearchSection[search.ArticleDocument]{
		Items:   page.Items,
		Total:   page.Total,
		Outcome: outcome,
	}, nil
}
