package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/search"
)

// CategoryWithProducts pairs a category with one page of its products.
type CategoryWithProducts struct {
	Category *entity.Category
	Products []*entity.Product
	Total    int64
}

// BrandWithProducts pairs a brand with one page of its products.
type BrandWithProducts struct {
	Brand    *entity.Brand
	Products []*entity.Product
	Total    int64
}

// TaxonomyUsecase exposes the product facet dimensions: categories,
// brands and tags.
type TaxonomyUsecase interface {
	ListCategories(ctx context.Context, limit, offset int) ([]*entity.Category, int64, error)
	GetCategoryProducts(ctx context.Context, id uint, limit, offset int) (*CategoryWithProducts, error)

	ListBrands(ctx context.Context, limit, offset int) ([]*entity.Brand, int64, error)
	GetBrandProducts(ctx context.Context, id uint, limit, offset int) (*BrandWithProducts, error)

	// ListTags returns every tag with its product count, most used
	// first.
	ListTags(ctx context.Context) ([]search.Suggestion, error)
}
