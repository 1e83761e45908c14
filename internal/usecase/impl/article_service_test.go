package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newArticleService(t *testing.T) (usecase.ArticleUsecase, *mockRepo.MockArticleRepository, *mockRepo.MockUserRepository, *mockSvc.MockArticleSyncSink) {
	articleRepo := mockRepo.NewMockArticleRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sink := mockSvc.NewMockArticleSyncSink(t)

	return NewArticleService(articleRepo, userRepo, sink), articleRepo, userRepo, sink
}

func TestArticleService_CreateArticle(t *testing.T) {
	service, articleRepo, userRepo, sink := newArticleService(t)
	ctx := context.Background()

	author := &entity.User{ID: 3, Email: "a@example.com", Name: "Alice"}
	userRepo.On("FindByID", ctx, uint(3)).Return(author, nil)
	articleRepo.On("Create", ctx, mock.AnythingOfType("*entity.Article")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Article).ID = 7
		}).
		Return(nil)
	sink.On("OnCreate", ctx, mock.AnythingOfType("*entity.Article")).Return()

	article, err := service.CreateArticle(ctx, &usecase.CreateArticleInput{
		AuthorID:  3,
		Title:     "Rolling upgrades",
		Content:   "body",
		Published: true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), article.ID)
	assert.Equal(t, uint(3), article.AuthorID)
}

func TestArticleService_CreateArticle_UnknownAuthor(t *testing.T) {
	service, articleRepo, userRepo, sink := newArticleService(t)
	ctx := context.Background()

	userRepo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrUserNotFound)

	_, err := service.CreateArticle(ctx, &usecase.CreateArticleInput{
		AuthorID: 99,
		Title:    "x",
		Content:  "y",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAuthorNotFound)
	articleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	sink.AssertNotCalled(t, "OnCreate", mock.Anything, mock.Anything)
}

func TestArticleService_UpdateArticle_TogglesPublished(t *testing.T) {
	service, articleRepo, _, sink := newArticleService(t)
	ctx := context.Background()

	stored := &entity.Article{ID: 7, AuthorID: 3, Title: "Rolling upgrades", Content: "body"}
	articleRepo.On("FindByID", ctx, uint(7)).Return(stored, nil).Twice()
	articleRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Article) bool {
		return a.Published
	})).Return(nil)
	sink.On("OnUpdate", ctx, mock.AnythingOfType("*entity.Article")).Return()

	published := true
	updated, err := service.UpdateArticle(ctx, 7, &usecase.UpdateArticleInput{Published: &published})
	require.NoError(t, err)
	assert.NotNil(t, updated)
}

func TestArticleService_DeleteArticle(t *testing.T) {
	service, articleRepo, _, sink := newArticleService(t)
	ctx := context.Background()

	articleRepo.On("Delete", ctx, uint(7)).Return(nil)
	sink.On("OnDelete", ctx, uint(7)).Return()

	require.NoError(t, service.DeleteArticle(ctx, 7))
}
