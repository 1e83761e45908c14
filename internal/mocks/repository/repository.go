// Package repository contains hand-maintained testify mocks for the
// persistence ports, used by usecase and sync tests.
package repository

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/search"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit, offset)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) FindByCategoryID(ctx context.Context, categoryID uint, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) FindByBrandID(ctx context.Context, brandID uint, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, brandID, limit, offset)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	args := m.Called(ctx, categoryID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByBrandID(ctx context.Context, brandID uint) (int64, error) {
	args := m.Called(ctx, brandID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FilterSearch(ctx context.Context, filter search.ProductFilter) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Get(1).(int64), args.Error(2)
}

// MockCategoryRepository mocks repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func NewMockCategoryRepository(t *testing.T) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	args := m.Called(ctx, limit, offset)
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindOrCreate(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error) {
	args := m.Called(ctx, query, limit)
	suggestions, _ := args.Get(0).([]search.Suggestion)

	return suggestions, args.Error(1)
}

// MockBrandRepository mocks repository.BrandRepository.
type MockBrandRepository struct {
	mock.Mock
}

func NewMockBrandRepository(t *testing.T) *MockBrandRepository {
	m := &MockBrandRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBrandRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Brand, error) {
	args := m.Called(ctx, limit, offset)
	brands, _ := args.Get(0).([]*entity.Brand)

	return brands, args.Error(1)
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id uint) (*entity.Brand, error) {
	args := m.Called(ctx, id)
	brand, _ := args.Get(0).(*entity.Brand)

	return brand, args.Error(1)
}

func (m *MockBrandRepository) FindByName(ctx context.Context, name string) (*entity.Brand, error) {
	args := m.Called(ctx, name)
	brand, _ := args.Get(0).(*entity.Brand)

	return brand, args.Error(1)
}

func (m *MockBrandRepository) FindOrCreate(ctx context.Context, name string) (*entity.Brand, error) {
	args := m.Called(ctx, name)
	brand, _ := args.Get(0).(*entity.Brand)

	return brand, args.Error(1)
}

func (m *MockBrandRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBrandRepository) Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error) {
	args := m.Called(ctx, query, limit)
	suggestions, _ := args.Get(0).([]search.Suggestion)

	return suggestions, args.Error(1)
}

// MockTagRepository mocks repository.TagRepository.
type MockTagRepository struct {
	mock.Mock
}

func NewMockTagRepository(t *testing.T) *MockTagRepository {
	m := &MockTagRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*entity.Tag, error) {
	args := m.Called(ctx, name)
	tag, _ := args.Get(0).(*entity.Tag)

	return tag, args.Error(1)
}

func (m *MockTagRepository) FindOrCreate(ctx context.Context, name string) (*entity.Tag, error) {
	args := m.Called(ctx, name)
	tag, _ := args.Get(0).(*entity.Tag)

	return tag, args.Error(1)
}

func (m *MockTagRepository) FindWithProductCount(ctx context.Context) ([]search.Suggestion, error) {
	args := m.Called(ctx)
	suggestions, _ := args.Get(0).([]search.Suggestion)

	return suggestions, args.Error(1)
}

func (m *MockTagRepository) Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error) {
	args := m.Called(ctx, query, limit)
	suggestions, _ := args.Get(0).([]search.Suggestion)

	return suggestions, args.Error(1)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query string, limit, offset int) ([]*entity.User, int64, error) {
	args := m.Called(ctx, query, limit, offset)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Get(1).(int64), args.Error(2)
}

// MockArticleRepository mocks repository.ArticleRepository.
type MockArticleRepository struct {
	mock.Mock
}

func NewMockArticleRepository(t *testing.T) *MockArticleRepository {
	m := &MockArticleRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockArticleRepository) FindAll(ctx context.Context, limit, offset int, publishedOnly bool) ([]*entity.Article, error) {
	args := m.Called(ctx, limit, offset, publishedOnly)
	articles, _ := args.Get(0).([]*entity.Article)

	return articles, args.Error(1)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*entity.Article)

	return article, args.Error(1)
}

func (m *MockArticleRepository) FindByAuthorID(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Article, error) {
	args := m.Called(ctx, authorID, limit, offset)
	articles, _ := args.Get(0).([]*entity.Article)

	return articles, args.Error(1)
}

func (m *MockArticleRepository) Create(ctx context.Context, article *entity.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *entity.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockArticleRepository) Count(ctx context.Context, publishedOnly bool) (int64, error) {
	args := m.Called(ctx, publishedOnly)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) Search(ctx context.Context, query string, limit, offset int, publishedOnly bool) ([]*entity.Article, int64, error) {
	args := m.Called(ctx, query, limit, offset, publishedOnly)
	articles, _ := args.Get(0).([]*entity.Article)

	return articles, args.Get(1).(int64), args.Error(2)
}
