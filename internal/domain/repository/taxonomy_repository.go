package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/search"
	"catalog/internal/errors"
)

var (
	// ErrCategoryNotFound is returned when the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrBrandNotFound is returned when the requested brand does not exist.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrTagNotFound is returned when the requested tag does not exist.
	ErrTagNotFound = errors.New("tag not found")
)

// CategoryRepository provides typed access to product categories.
type CategoryRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindOrCreate returns the category with the given name, creating
	// it when absent. The existence check and the create are separate
	// statements; concurrent duplicate-name creation is a known hazard
	// handled by a single re-read on unique violation.
	FindOrCreate(ctx context.Context, name string) (*entity.Category, error)
	Count(ctx context.Context) (int64, error)

	// Suggest is the autosuggest database fallback: case-insensitive
	// substring match on name, ordered by product count descending.
	Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error)
}

// BrandRepository provides typed access to product brands.
type BrandRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Brand, error)
	FindByID(ctx context.Context, id uint) (*entity.Brand, error)
	FindByName(ctx context.Context, name string) (*entity.Brand, error)
	FindOrCreate(ctx context.Context, name string) (*entity.Brand, error)
	Count(ctx context.Context) (int64, error)
	Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error)
}

// TagRepository provides typed access to product tags.
type TagRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Tag, error)
	FindOrCreate(ctx context.Context, name string) (*entity.Tag, error)
	FindWithProductCount(ctx context.Context) ([]search.Suggestion, error)
	Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error)
}
