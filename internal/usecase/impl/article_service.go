package impl

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/usecase"
)

type articleService struct {
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	sink        service.ArticleSyncSink
}

// NewArticleService creates a new article service instance.
func NewArticleService(
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
	sink service.ArticleSyncSink,
) usecase.ArticleUsecase {
	return &articleService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		sink:        sink,
	}
}

func (s *articleService) ListArticles(ctx context.Context, input *usecase.ListArticlesInput) ([]*entity.Article, int64, error) {
	articles, err := s.articleRepo.FindAll(ctx, input.Limit, input.Offset, input.PublishedOnly)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.articleRepo.Count(ctx, input.PublishedOnly)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (s *articleService) GetArticle(ctx context.Context, id uint) (*entity.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, err
	}

	return article, nil
}

func (s *articleService) GetArticlesByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Article, error) {
	if _, err := s.userRepo.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAuthorNotFound
		}

		return nil, err
	}

	return s.articleRepo.FindByAuthorID(ctx, authorID, limit, offset)
}

// CreateArticle persists a new article for an existing author, then
// syncs the index best-effort.
func (s *articleService) CreateArticle(ctx context.Context, input *usecase.CreateArticleInput) (*entity.Article, error) {
	author, err := s.userRepo.FindByID(ctx, input.AuthorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAuthorNotFound
		}

		return nil, err
	}

	article := &entity.Article{
		AuthorID:  author.ID,
		Title:     input.Title,
		Content:   input.Content,
		Summary:   input.Summary,
		Published: input.Published,
		Author:    author,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	s.sink.OnCreate(ctx, article)

	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, id uint, input *usecase.UpdateArticleInput) (*entity.Article, error) {
	article, err := s.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.Summary != nil {
		article.Summary = *input.Summary
	}
	if input.Published != nil {
		article.Published = *input.Published
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	updated, err := s.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	s.sink.OnUpdate(ctx, updated)

	return updated, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, id uint) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return domainerrors.ErrArticleNotFound
		}

		return err
	}

	s.sink.OnDelete(ctx, id)

	return nil
}
