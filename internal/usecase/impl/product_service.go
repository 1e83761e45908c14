package impl

import (
	"context"
	"log/slog"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/search"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/usecase"
)

// Listing page bounds.
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	txManager    repository.TransactionManager
	searcher     service.ProductSearcher
	sink         service.ProductSyncSink
	reindexer    service.ProductReindexer
	logger       *slog.Logger
}

// NewProductService creates a new product service instance.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	txManager repository.TransactionManager,
	searcher service.ProductSearcher,
	sink service.ProductSyncSink,
	reindexer service.ProductReindexer,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		txManager:    txManager,
		searcher:     searcher,
		sink:         sink,
		reindexer:    reindexer,
		logger:       logger,
	}
}

// ListProducts serves the faceted listing from the index, degrading to
// the database substring filter when the index read fails. Both paths
// return the same denormalized document shape.
func (s *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filter := search.ProductFilter{
		Query:       input.Query,
		Brands:      input.Brands,
		Categories:  input.Categories,
		Tags:        input.Tags,
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		MinRating:   input.MinRating,
		MinDiscount: input.MinDiscount,
		MaxDiscount: input.MaxDiscount,
		InStock:     input.InStock,
		Sort:        input.Sort,
		Order:       input.Order,
		Limit:       limit,
		Offset:      (page - 1) * limit,
	}

	result, outcome, err := runWithFallback(ctx, s.logger, "product listing",
		func(ctx context.Context) (*search.Page[search.ProductDocument], error) {
			return s.searcher.Search(ctx, filter)
		},
		func(ctx context.Context) (*search.Page[search.ProductDocument], error) {
			products, total, err := s.productRepo.FilterSearch(ctx, filter)
			if err != nil {
				return nil, err
			}

			fallbackPage := &search.Page[search.ProductDocument]{
				Items: make([]search.ProductDocument, 0, len(products)),
				Total: total,
			}
			for _, product := range products {
				fallbackPage.Items = append(fallbackPage.Items, search.NewProductDocument(product))
			}

			return fallbackPage, nil
		},
	)
	if err != nil {
		return nil, err
	}

	return &usecase.ProductPage{
		Products: result.Items,
		Total:    result.Total,
		Outcome:  outcome,
	}, nil
}

// GetProduct retrieves one product with all relations loaded.
func (s *productService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

// CreateProduct persists a new product. Category and brand must already
// exist; tags are created lazily. The database write and the tag rows
// commit in one transaction, then the index sync runs best-effort.
func (s *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	category, err := s.categoryRepo.FindByName(ctx, input.Category)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, err
	}

	brand, err := s.brandRepo.FindByName(ctx, input.Brand)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrBrandNotFound
		}

		return nil, err
	}

	product := &entity.Product{
		CategoryID:           category.ID,
		BrandID:              brand.ID,
		SKU:                  input.SKU,
		Title:                input.Title,
		Description:          input.Description,
		Price:                input.Price,
		DiscountPercentage:   input.DiscountPercentage,
		Rating:               input.Rating,
		Stock:                input.Stock,
		MinimumOrderQuantity: input.MinimumOrderQuantity,
		Weight:               input.Weight,
		WarrantyInformation:  input.WarrantyInformation,
		ShippingInformation:  input.ShippingInformation,
		AvailabilityStatus:   input.AvailabilityStatus,
		ReturnPolicy:         input.ReturnPolicy,
		Barcode:              input.Barcode,
		Thumbnail:            input.Thumbnail,
		Images:               input.Images,
		Tags:                 input.Tags,
		Category:             category,
		Brand:                brand,
	}

	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tagRepo := repoFactory.NewTagRepository()
		for _, tagName := range input.Tags {
			if _, err := tagRepo.FindOrCreate(ctx, tagName); err != nil {
				return err
			}
		}

		return repoFactory.NewProductRepository().Create(ctx, product)
	}); err != nil {
		return nil, err
	}

	s.sink.OnCreate(ctx, product)

	return product, nil
}

// UpdateProduct applies the non-nil input fields and re-syncs the full
// index document.
func (s *productService) UpdateProduct(ctx context.Context, id uint, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyProductUpdate(ctx, product, input); err != nil {
		return nil, err
	}

	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tagRepo := repoFactory.NewTagRepository()
		for _, tagName := range product.Tags {
			if _, err := tagRepo.FindOrCreate(ctx, tagName); err != nil {
				return err
			}
		}

		return repoFactory.NewProductRepository().Update(ctx, product)
	}); err != nil {
		return nil, err
	}

	// Re-read so the synced document carries fresh relations and
	// timestamps.
	updated, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	s.sink.OnUpdate(ctx, updated)

	return updated, nil
}

func (s *productService) applyProductUpdate(ctx context.Context, product *entity.Product, input *usecase.UpdateProductInput) error {
	if input.Category != nil {
		category, err := s.categoryRepo.FindByName(ctx, *input.Category)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return err
		}
		product.CategoryID = category.ID
		product.Category = category
	}
	if input.Brand != nil {
		brand, err := s.brandRepo.FindByName(ctx, *input.Brand)
		if err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return domainerrors.ErrBrandNotFound
			}

			return err
		}
		product.BrandID = brand.ID
		product.Brand = brand
	}

	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Tags != nil {
		product.Tags = *input.Tags
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.DiscountPercentage != nil {
		product.DiscountPercentage = *input.DiscountPercentage
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.MinimumOrderQuantity != nil {
		product.MinimumOrderQuantity = *input.MinimumOrderQuantity
	}
	if input.Weight != nil {
		product.Weight = *input.Weight
	}
	if input.WarrantyInformation != nil {
		product.WarrantyInformation = *input.WarrantyInformation
	}
	if input.ShippingInformation != nil {
		product.ShippingInformation = *input.ShippingInformation
	}
	if input.AvailabilityStatus != nil {
		product.AvailabilityStatus = *input.AvailabilityStatus
	}
	if input.ReturnPolicy != nil {
		product.ReturnPolicy = *input.ReturnPolicy
	}
	if input.Barcode != nil {
		product.Barcode = *input.Barcode
	}
	if input.Thumbnail != nil {
		product.Thumbnail = *input.Thumbnail
	}
	if input.Images != nil {
		product.Images = *input.Images
	}

	return nil
}

// DeleteProduct removes the product and best-effort deletes its index
// document.
func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	s.sink.OnDelete(ctx, id)

	return nil
}

// Reindex rebuilds the product index from the database.
func (s *productService) Reindex(ctx context.Context) (*usecase.ReindexResult, error) {
	indexed, failed, err := s.reindexer.Reindex(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.ReindexResult{
		Indexed: indexed,
		Failed:  failed,
	}, nil
}
