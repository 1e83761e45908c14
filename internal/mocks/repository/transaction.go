package repository

import (
	"context"

	domainrepo "catalog/internal/domain/repository"
)

// FakeRepositoryFactory hands out the configured mocks as
// transaction-bound repositories.
type FakeRepositoryFactory struct {
	ProductRepo  domainrepo.ProductRepository
	CategoryRepo domainrepo.CategoryRepository
	BrandRepo    domainrepo.BrandRepository
	TagRepo      domainrepo.TagRepository
	ReviewRepo   domainrepo.ReviewRepository
}

func (f *FakeRepositoryFactory) NewProductRepository() domainrepo.ProductRepository {
	return f.ProductRepo
}

func (f *FakeRepositoryFactory) NewCategoryRepository() domainrepo.CategoryRepository {
	return f.CategoryRepo
}

func (f *FakeRepositoryFactory) NewBrandRepository() domainrepo.BrandRepository {
	return f.BrandRepo
}

func (f *FakeRepositoryFactory) NewTagRepository() domainrepo.TagRepository {
	return f.TagRepo
}

func (f *FakeRepositoryFactory) NewReviewRepository() domainrepo.ReviewRepository {
	return f.ReviewRepo
}

// FakeTransactionManager runs the callback immediately against the
// fake factory, without any real transaction.
type FakeTransactionManager struct {
	Factory *FakeRepositoryFactory
}

func (m *FakeTransactionManager) Execute(_ context.Context, fn func(repoFactory domainrepo.RepositoryFactory) error) error {
	return fn(m.Factory)
}
