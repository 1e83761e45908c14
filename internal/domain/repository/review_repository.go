package repository

import (
	"context"

	"catalog/internal/domain/entity"
)

// ReviewRepository provides access to product reviews. Reviews are
// written in batches during seeding and read through product preloads.
type ReviewRepository interface {
	CreateBatch(ctx context.Context, reviews []*entity.Review) error

	// Exists reports whether a review with the same (product, reviewer,
	// comment) tuple is already stored. Used for seed deduplication.
	Exists(ctx context.Context, productID, reviewerID uint, comment string) (bool, error)
}
