package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"
)

// ErrArticleNotFound is returned when the requested article does not exist.
var ErrArticleNotFound = errors.New("article not found")

// ArticleRepository provides typed CRUD access to articles.
type ArticleRepository interface {
	FindAll(ctx context.Context, limit, offset int, publishedOnly bool) ([]*entity.Article, error)
	FindByID(ctx context.Context, id uint) (*entity.Article, error)
	FindByAuthorID(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, publishedOnly bool) (int64, error)

	// Search is the database fallback for full-text article search:
	// case-insensitive substring match on title, content and summary.
	Search(ctx context.Context, query string, limit, offset int, publishedOnly bool) ([]*entity.Article, int64, error)
}
