package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/search"
	mockRepo "catalog/internal/mocks/repository"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taxonomyServiceMocks struct {
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	brandRepo    *mockRepo.MockBrandRepository
	tagRepo      *mockRepo.MockTagRepository
}

func newTaxonomyService(t *testing.T) (usecase.TaxonomyUsecase, *taxonomyServiceMocks) {
	m := &taxonomyServiceMocks{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		brandRepo:    mockRepo.NewMockBrandRepository(t),
		tagRepo:      mockRepo.NewMockTagRepository(t),
	}

	svc := NewTaxonomyService(m.productRepo, m.categoryRepo, m.brandRepo, m.tagRepo)

	return svc, m
}

func TestTaxonomyService_ListCategories(t *testing.T) {
	svc, m := newTaxonomyService(t)

	m.categoryRepo.On("FindAll", mock.Anything, 10, 0).
		Return([]*entity.Category{{ID: 1, Name: "peripherals"}}, nil)
	m.categoryRepo.On("Count", mock.Anything).Return(int64(1), nil)

	categories, total, err := svc.ListCategories(context.Background(), 10, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, categories, 1)
	assert.Equal(t, "peripherals", categories[0].Name)
}

func TestTaxonomyService_GetCategoryProducts(t *testing.T) {
	svc, m := newTaxonomyService(t)

	m.categoryRepo.On("FindByID", mock.Anything, uint(3)).
		Return(&entity.Category{ID: 3, Name: "peripherals"}, nil)
	m.productRepo.On("FindByCategoryID", mock.Anything, uint(3), 10, 0).
		Return([]*entity.Product{{ID: 1, Title: "Mechanical Keyboard"}}, nil)
	m.productRepo.On("CountByCategoryID", mock.Anything, uint(3)).
		Return(int64(5), nil)

	result, err := svc.GetCategoryProducts(context.Background(), 3, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, "peripherals", result.Category.Name)
	assert.Equal(t, int64(5), result.Total)
	require.Len(t, result.Products, 1)
}

func TestTaxonomyService_GetCategoryProducts_NotFound(t *testing.T) {
	svc, m := newTaxonomyService(t)

	m.categoryRepo.On("FindByID", mock.Anything, uint(99)).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := svc.GetCategoryProducts(context.Background(), 99, 10, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestTaxonomyService_GetBrandProducts_NotFound(t *testing.T) {
	svc, m := newTaxonomyService(t)

	m.brandRepo.On("FindByID", mock.Anything, uint(42)).
		Return(nil, repository.ErrBrandNotFound)

	_, err := svc.GetBrandProducts(context.Background(), 42, 10, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
}

func TestTaxonomyService_ListTags(t *testing.T) {
	svc, m := newTaxonomyService(t)

	m.tagRepo.On("FindWithProductCount", mock.Anything).
		Return([]search.Suggestion{
			{Text: "wireless", Count: 12},
			{Text: "mechanical", Count: 4},
		}, nil)

	tags, err := svc.ListTags(context.Background())

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "wireless", tags[0].Text)
	assert.Equal(t, int64(12), tags[0].Count)
}
