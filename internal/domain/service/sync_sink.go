// Package service declares the infra-facing ports used by the usecase
// layer, most importantly the search-index sync sinks.
package service

import (
	"context"

	"catalog/internal/domain/entity"
)

// ProductSyncSink propagates committed product mutations to the search
// index. The contract is best-effort: implementations log and swallow
// index failures, so callers never roll back or retry a primary-store
// write because of the index. A failed sync is lost until the next
// bulk reindex. Methods return nothing so the contract is visible in
// the signature, and implementations may later be swapped for a
// queue-backed asynchronous sink without touching callers.
type ProductSyncSink interface {
	OnCreate(ctx context.Context, product *entity.Product)
	OnUpdate(ctx context.Context, product *entity.Product)
	OnDelete(ctx context.Context, id uint)
}

// ArticleSyncSink mirrors ProductSyncSink for articles.
type ArticleSyncSink interface {
	OnCreate(ctx context.Context, article *entity.Article)
	OnUpdate(ctx context.Context, article *entity.Article)
	OnDelete(ctx context.Context, id uint)
}

// UserSyncSink mirrors ProductSyncSink for users.
type UserSyncSink interface {
	OnCreate(ctx context.Context, user *entity.User)
	OnUpdate(ctx context.Context, user *entity.User)
	OnDelete(ctx context.Context, id uint)
}

// ProductReindexer rebuilds the product index from the primary store.
type ProductReindexer interface {
	// Reindex enumerates all products in pages and bulk-indexes their
	// documents. Partial bulk failures are logged and do not abort the
	// remaining batches. Returns the number of documents submitted and
	// the number of per-item failures reported by the index.
	Reindex(ctx context.Context) (indexed int, failed int, err error)
}
