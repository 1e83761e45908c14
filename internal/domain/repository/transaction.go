package repository

import "context"

// RepositoryFactory hands out repository instances bound to one
// transaction.
type RepositoryFactory interface {
	NewProductRepository() ProductRepository
	NewCategoryRepository() CategoryRepository
	NewBrandRepository() BrandRepository
	NewTagRepository() TagRepository
	NewReviewRepository() ReviewRepository
}

// TransactionManager runs multi-step persistence work atomically. Used
// where a product write and its lazily created facet rows must commit
// together. Index sync stays outside the transaction: it happens after
// commit and never participates in rollback.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
