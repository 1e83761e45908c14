package impl

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/search"
	"catalog/internal/errors"
	"catalog/internal/usecase"
)

type taxonomyService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	tagRepo      repository.TagRepository
}

// NewTaxonomyService creates a new taxonomy service instance.
func NewTaxonomyService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	tagRepo repository.TagRepository,
) usecase.TaxonomyUsecase {
	return &taxonomyService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		tagRepo:      tagRepo,
	}
}

func (s *taxonomyService) ListCategories(ctx context.Context, limit, offset int) ([]*entity.Category, int64, error) {
	categories, err := s.categoryRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

func (s *taxonomyService) GetCategoryProducts(ctx context.Context, id uint, limit, offset int) (*usecase.CategoryWithProducts, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, err
	}

	products, err := s.productRepo.FindByCategoryID(ctx, id, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.CountByCategoryID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.CategoryWithProducts{
		Category: category,
		Products: products,
		Total:    total,
	}, nil
}

func (s *taxonomyService) ListBrands(ctx context.Context, limit, offset int) ([]*entity.Brand, int64, error) {
	brands, err := s.brandRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.brandRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return brands, total, nil
}

func (s *taxonomyService) GetBrandProducts(ctx context.Context, id uint, limit, offset int) (*usecase.BrandWithProducts, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}

		return nil, err
	}

	products, err := s.productRepo.FindByBrandID(ctx, id, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.CountByBrandID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.BrandWithProducts{
		Brand:    brand,
		Products: products,
		Total:    total,
	}, nil
}

func (s *taxonomyService) ListTags(ctx context.Context) ([]search.Suggestion, error) {
	return s.tagRepo.FindWithProductCount(ctx)
}
