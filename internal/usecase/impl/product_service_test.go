package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/search"
	"catalog/internal/errors"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type productServiceMocks struct {
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	brandRepo    *mockRepo.MockBrandRepository
	tagRepo      *mockRepo.MockTagRepository
	searcher     *mockSvc.MockProductSearcher
	sink         *mockSvc.MockProductSyncSink
	reindexer    *mockSvc.MockProductReindexer
}

func newProductService(t *testing.T) (usecase.ProductUsecase, *productServiceMocks) {
	m := &productServiceMocks{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		brandRepo:    mockRepo.NewMockBrandRepository(t),
		tagRepo:      mockRepo.NewMockTagRepository(t),
		searcher:     mockSvc.NewMockProductSearcher(t),
		sink:         mockSvc.NewMockProductSyncSink(t),
		reindexer:    mockSvc.NewMockProductReindexer(t),
	}

	txManager := &mockRepo.FakeTransactionManager{
		Factory: &mockRepo.FakeRepositoryFactory{
			ProductRepo:  m.productRepo,
			CategoryRepo: m.categoryRepo,
			BrandRepo:    m.brandRepo,
			TagRepo:      m.tagRepo,
		},
	}

	service := NewProductService(
		m.productRepo, m.categoryRepo, m.brandRepo,
		txManager, m.searcher, m.sink, m.reindexer, testLogger(),
	)

	return service, m
}

func storedProduct(id uint) *entity.Product {
	return &entity.Product{
		ID:                 id,
		CategoryID:         3,
		BrandID:            7,
		SKU:                "SKU-001",
		Title:              "Wireless Keyboard",
		Description:        "Low profile wireless keyboard",
		Price:              59.90,
		DiscountPercentage: 10,
		Rating:             4.2,
		Stock:              12,
		Tags:               []string{"electronics"},
		Category:           &entity.Category{ID: 3, Name: "peripherals"},
		Brand:              &entity.Brand{ID: 7, Name: "Keytron"},
		CreatedAt:          time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProductService_ListProducts_IndexPath(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	indexPage := &search.Page[search.ProductDocument]{
		Items: []search.ProductDocument{{ID: 1, Title: "Wireless Keyboard"}},
		Total: 1,
	}
	m.searcher.On("Search", ctx, mock.AnythingOfType("search.ProductFilter")).Return(indexPage, nil)

	result, err := service.ListProducts(ctx, &usecase.ListProductsInput{Query: "keyboard"})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeIndex, result.Outcome)
	assert.Equal(t, int64(1), result.Total)
	assert.Len(t, result.Products, 1)
}

func TestProductService_ListProducts_FallsBackToDatabase(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.searcher.On("Search", ctx, mock.AnythingOfType("search.ProductFilter")).
		Return(nil, errors.New("index unreachable"))
	m.productRepo.On("FilterSearch", ctx, mock.AnythingOfType("search.ProductFilter")).
		Return([]*entity.Product{storedProduct(1)}, int64(1), nil)

	result, err := service.ListProducts(ctx, &usecase.ListProductsInput{Query: "keyboard"})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeFallback, result.Outcome)
	require.Len(t, result.Products, 1)
	// The fallback answers with the same denormalized shape.
	assert.Equal(t, "Wireless Keyboard", result.Products[0].Title)
	assert.Equal(t, "peripherals", result.Products[0].Category)
	assert.Equal(t, "Keytron", result.Products[0].Brand)
}

func TestProductService_ListProducts_BothPathsFail(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.searcher.On("Search", ctx, mock.AnythingOfType("search.ProductFilter")).
		Return(nil, errors.New("index unreachable"))
	m.productRepo.On("FilterSearch", ctx, mock.AnythingOfType("search.ProductFilter")).
		Return(nil, int64(0), errors.New("connection refused"))

	_, err := service.ListProducts(ctx, &usecase.ListProductsInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSearchUnavailable)
}

func TestProductService_ListProducts_ClampsPagination(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.searcher.On("Search", ctx, mock.MatchedBy(func(f search.ProductFilter) bool {
		return f.Limit == maxPageSize && f.Offset == maxPageSize
	})).Return(&search.Page[search.ProductDocument]{}, nil)

	_, err := service.ListProducts(ctx, &usecase.ListProductsInput{Page: 2, Limit: 5000})
	require.NoError(t, err)
}

func TestProductService_CreateProduct(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.categoryRepo.On("FindByName", ctx, "peripherals").
		Return(&entity.Category{ID: 3, Name: "peripherals"}, nil)
	m.brandRepo.On("FindByName", ctx, "Keytron").
		Return(&entity.Brand{ID: 7, Name: "Keytron"}, nil)
	m.tagRepo.On("FindOrCreate", ctx, "electronics").
		Return(&entity.Tag{ID: 1, Name: "electronics"}, nil)
	m.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Product).ID = 42
		}).
		Return(nil)
	m.sink.On("OnCreate", ctx, mock.AnythingOfType("*entity.Product")).Return()

	product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		SKU:      "SKU-001",
		Title:    "Wireless Keyboard",
		Category: "peripherals",
		Brand:    "Keytron",
		Tags:     []string{"electronics"},
		Price:    59.90,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), product.ID)
	assert.Equal(t, uint(3), product.CategoryID)
	assert.Equal(t, uint(7), product.BrandID)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.categoryRepo.On("FindByName", ctx, "nonexistent").
		Return(nil, repository.ErrCategoryNotFound)

	_, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		SKU:      "SKU-001",
		Title:    "Wireless Keyboard",
		Category: "nonexistent",
		Brand:    "Keytron",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	m.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.sink.AssertNotCalled(t, "OnCreate", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct_DuplicateSKU(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.categoryRepo.On("FindByName", ctx, "peripherals").
		Return(&entity.Category{ID: 3, Name: "peripherals"}, nil)
	m.brandRepo.On("FindByName", ctx, "Keytron").
		Return(&entity.Brand{ID: 7, Name: "Keytron"}, nil)
	m.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Return(domainerrors.ErrDuplicateSKU.WrapMessage("create product"))

	_, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		SKU:      "SKU-001",
		Title:    "Wireless Keyboard",
		Category: "peripherals",
		Brand:    "Keytron",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateSKU)
	m.sink.AssertNotCalled(t, "OnCreate", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.productRepo.On("FindByID", ctx, uint(1)).Return(storedProduct(1), nil).Twice()
	m.tagRepo.On("FindOrCreate", ctx, "electronics").
		Return(&entity.Tag{ID: 1, Name: "electronics"}, nil)
	m.productRepo.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Price == 49.90 && p.Title == "Wireless Keyboard"
	})).Return(nil)
	m.sink.On("OnUpdate", ctx, mock.AnythingOfType("*entity.Product")).Return()

	price := 49.90
	updated, err := service.UpdateProduct(ctx, 1, &usecase.UpdateProductInput{Price: &price})
	require.NoError(t, err)
	assert.NotNil(t, updated)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.productRepo.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrProductNotFound)

	price := 49.90
	_, err := service.UpdateProduct(ctx, 99, &usecase.UpdateProductInput{Price: &price})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	m.sink.AssertNotCalled(t, "OnUpdate", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.productRepo.On("Delete", ctx, uint(1)).Return(nil)
	m.sink.On("OnDelete", ctx, uint(1)).Return()

	require.NoError(t, service.DeleteProduct(ctx, 1))
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.productRepo.On("Delete", ctx, uint(99)).Return(repository.ErrProductNotFound)

	err := service.DeleteProduct(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	m.sink.AssertNotCalled(t, "OnDelete", mock.Anything, mock.Anything)
}

func TestProductService_Reindex(t *testing.T) {
	service, m := newProductService(t)
	ctx := context.Background()

	m.reindexer.On("Reindex", ctx).Return(120, 3, nil)

	result, err := service.Reindex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, result.Indexed)
	assert.Equal(t, 3, result.Failed)
}
