package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// CreateArticleInput represents the input for creating an article.
type CreateArticleInput struct {
	AuthorID  uint   `json:"author_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Summary   string `json:"summary"`
	Published bool   `json:"published"`
}

// UpdateArticleInput represents the input for updating an article.
// Authorship never changes.
type UpdateArticleInput struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

// ListArticlesInput carries the article listing parameters.
type ListArticlesInput struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}

// ArticleUsecase defines the article management use cases.
type ArticleUsecase interface {
	ListArticles(ctx context.Context, input *ListArticlesInput) ([]*entity.Article, int64, error)
	GetArticle(ctx context.Context, id uint) (*entity.Article, error)
	GetArticlesByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Article, error)
	CreateArticle(ctx context.Context, input *CreateArticleInput) (*entity.Article, error)
	UpdateArticle(ctx context.Context, id uint, input *UpdateArticleInput) (*entity.Article, error)
	DeleteArticle(ctx context.Context, id uint) error
}
