// Package service contains hand-maintained testify mocks for the
// search and sync ports.
package service

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/search"

	"github.com/stretchr/testify/mock"
)

// MockProductSearcher mocks service.ProductSearcher.
type MockProductSearcher struct {
	mock.Mock
}

func NewMockProductSearcher(t *testing.T) *MockProductSearcher {
	m := &MockProductSearcher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductSearcher) Search(ctx context.Context, filter search.ProductFilter) (*search.Page[search.ProductDocument], error) {
	args := m.Called(ctx, filter)
	page, _ := args.Get(0).(*search.Page[search.ProductDocument])

	return page, args.Error(1)
}

func (m *MockProductSearcher) Suggest(ctx context.Context, facet search.Facet, query string, size int) ([]search.Suggestion, error) {
	args := m.Called(ctx, facet, query, size)
	suggestions, _ := args.Get(0).([]search.Suggestion)

	return suggestions, args.Error(1)
}

// MockUserSearcher mocks service.UserSearcher.
type MockUserSearcher struct {
	mock.Mock
}

func NewMockUserSearcher(t *testing.T) *MockUserSearcher {
	m := &MockUserSearcher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserSearcher) Search(ctx context.Context, query string, limit, offset int) (*search.Page[search.UserDocument], error) {
	args := m.Called(ctx, query, limit, offset)
	page, _ := args.Get(0).(*search.Page[search.UserDocument])

	return page, args.Error(1)
}

// MockArticleSearcher mocks service.ArticleSearcher.
type MockArticleSearcher struct {
	mock.Mock
}

func NewMockArticleSearcher(t *testing.T) *MockArticleSearcher {
	m := &MockArticleSearcher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockArticleSearcher) Search(ctx context.Context, query string, publishedOnly bool, limit, offset int) (*search.Page[search.ArticleDocument], error) {
	args := m.Called(ctx, query, publishedOnly, limit, offset)
	page, _ := args.Get(0).(*search.Page[search.ArticleDocument])

	return page, args.Error(1)
}

// MockProductSyncSink mocks service.ProductSyncSink.
type MockProductSyncSink struct {
	mock.Mock
}

func NewMockProductSyncSink(t *testing.T) *MockProductSyncSink {
	m := &MockProductSyncSink{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductSyncSink) OnCreate(ctx context.Context, product *entity.Product) {
	m.Called(ctx, product)
}

func (m *MockProductSyncSink) OnUpdate(ctx context.Context, product *entity.Product) {
	m.Called(ctx, product)
}

func (m *MockProductSyncSink) OnDelete(ctx context.Context, id uint) {
	m.Called(ctx, id)
}

// MockArticleSyncSink mocks service.ArticleSyncSink.
type MockArticleSyncSink struct {
	mock.Mock
}

func NewMockArticleSyncSink(t *testing.T) *MockArticleSyncSink {
	m := &MockArticleSyncSink{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockArticleSyncSink) OnCreate(ctx context.Context, article *entity.Article) {
	m.Called(ctx, article)
}

func (m *MockArticleSyncSink) OnUpdate(ctx context.Context, article *entity.Article) {
	m.Called(ctx, article)
}

func (m *MockArticleSyncSink) OnDelete(ctx context.Context, id uint) {
	m.Called(ctx, id)
}

// MockUserSyncSink mocks service.UserSyncSink.
type MockUserSyncSink struct {
	mock.Mock
}

func NewMockUserSyncSink(t *testing.T) *MockUserSyncSink {
	m := &MockUserSyncSink{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserSyncSink) OnCreate(ctx context.Context, user *entity.User) {
	m.Called(ctx, user)
}

func (m *MockUserSyncSink) OnUpdate(ctx context.Context, user *entity.User) {
	m.Called(ctx, user)
}

func (m *MockUserSyncSink) OnDelete(ctx context.Context, id uint) {
	m.Called(ctx, id)
}

// MockProductReindexer mocks service.ProductReindexer.
type MockProductReindexer struct {
	mock.Mock
}

func NewMockProductReindexer(t *testing.T) *MockProductReindexer {
	m := &MockProductReindexer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductReindexer) Reindex(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Int(1), args.Error(2)
}
