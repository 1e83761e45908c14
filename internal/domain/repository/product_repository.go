// Package repository declares the persistence ports consumed by the
// usecase layer, together with their sentinel errors.
package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/search"
	"catalog/internal/errors"
)

// ErrProductNotFound is returned when the requested product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository provides typed CRUD access to products. All finders
// preload category, brand, tags and reviews.
type ProductRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	FindByCategoryID(ctx context.Context, categoryID uint, limit, offset int) ([]*entity.Product, error)
	FindByBrandID(ctx context.Context, brandID uint, limit, offset int) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)
	CountByBrandID(ctx context.Context, brandID uint) (int64, error)

	// FilterSearch is the database fallback for faceted search. It is
	// strictly less precise than the index path: case-insensitive
	// substring matching on title/description instead of fuzzy
	// relevance scoring. Facet and range filters apply as in the index.
	FilterSearch(ctx context.Context, filter search.ProductFilter) ([]*entity.Product, int64, error)
}
