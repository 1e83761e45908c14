package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/search"
	"catalog/internal/errors"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchServiceMocks struct {
	userRepo        *mockRepo.MockUserRepository
	articleRepo     *mockRepo.MockArticleRepository
	userSearcher    *mockSvc.MockUserSearcher
	articleSearcher *mockSvc.MockArticleSearcher
}

func newSearchService(t *testing.T) (usecase.SearchUsecase, *searchServiceMocks) {
	m := &searchServiceMocks{
		userRepo:        mockRepo.NewMockUserRepository(t),
		articleRepo:     mockRepo.NewMockArticleRepository(t),
		userSearcher:    mockSvc.NewMockUserSearcher(t),
		articleSearcher: mockSvc.NewMockArticleSearcher(t),
	}

	service := NewSearchService(m.userRepo, m.articleRepo, m.userSearcher, m.articleSearcher, testLogger())

	return service, m
}

func TestSearchService_UsersOnly(t *testing.T) {
	service, m := newSearchService(t)
	ctx := context.Background()

	m.userSearcher.On("Search", ctx, "alice", 10, 0).
		Return(&search.Page[search.UserDocument]{
			Items: []search.UserDocument{{ID: 1, Name: "Alice"}},
			Total: 1,
		}, nil)

	output, err := service.Search(ctx, &usecase.SearchInput{Query: "alice", Type: usecase.SearchTypeUsers, Limit: 10})
	require.NoError(t, err)
	require.NotNil(t, output.Users)
	assert.Nil(t, output.Articles)
	assert.Equal(t, usecase.OutcomeIndex, output.Users.Outcome)
	assert.Equal(t, int64(1), output.Users.Total)
}

func TestSearchService_BothSplitsLimit(t *testing.T) {
	service, m := newSearchService(t)
	ctx := context.Background()

	m.userSearcher.On("Search", ctx, "go", 5, 0).
		Return(&search.Page[search.UserDocument]{}, nil)
	m.articleSearcher.On("Search", ctx, "go", true, 5, 0).
		Return(&search.Page[search.ArticleDocument]{}, nil)

	output, err := service.Search(ctx, &usecase.SearchInput{
		Query:         "go",
		Type:          usecase.SearchTypeBoth,
		PublishedOnly: true,
		Limit:         10,
	})
	require.NoError(t, err)
	assert.NotNil(t, output.Users)
	assert.NotNil(t, output.Articles)
}

func TestSearchService_BothOddLimitGivesArticlesTheExtraSlot(t *testing.T) {
	service, m := newSearchService(t)
	ctx := context.Background()

	m.userSearcher.On("Search", ctx, "go", 3, 0).
		Return(&search.Page[search.UserDocument]{}, nil)
	m.articleSearcher.On("Search", ctx, "go", false, 4, 0).
		Return(&search.Page[search.ArticleDocument]{}, nil)

	output, err := service.Search(ctx, &usecase.SearchInput{
		Query: "go",
		Type:  usecase.SearchTypeBoth,
		Limit: 7,
	})
	require.NoError(t, err)
	assert.NotNil(t, output.Users)
	assert.NotNil(t, output.Articles)
}

func TestSearchService_ArticleFallback(t *testing.T) {
	service, m := newSearchService(t)
	ctx := context.Background()

	m.articleSearcher.On("Search", ctx, "upgrades", false, 10, 0).
		Return(nil, errors.New("index unreachable"))
	m.articleRepo.On("Search", ctx, "upgrades", 10, 0, false).
		Return([]*entity.Article{{ID: 7, Title: "Rolling upgrades"}}, int64(1), nil)

	section, err := service.SearchArticles(ctx, "upgrades", false, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeFallback, section.Outcome)
	require.Len(t, section.Items, 1)
	assert.Equal(t, "Rolling upgrades", section.Items[0].Title)
}

func TestSearchService_MixedOutcomes(t *testing.T) {
	service, m := newSearchService(t)
	ctx := context.Background()

	// User index healthy, article index down: the sections report
	// their read paths independently.
	m.userSearcher.On("Search", ctx, "go", 5, 0).
		Return(&search.Page[search.UserDocument]{}, nil)
	m.articleSearcher.On("Search", ctx, "go", false, 5, 0).
		Return(nil, errors.New("index unreachable"))
	m.articleRepo.On("Search", ctx, "go", 5, 0, false).
		Return([]*entity.Article{}, int64(0), nil)

	output, err := service.Search(ctx, &usecase.SearchInput{Query: "go", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeIndex, output.Users.Outcome)
	assert.Equal(t, usecase.OutcomeFallback, output.Articles.Outcome)
}
