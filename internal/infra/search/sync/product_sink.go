// Package sync implements the dual-write policy between the primary
// store and the search index. Every sink call happens after the
// primary-store write committed; index failures are logged with enough
// context for manual reconciliation and never reach the caller. There
// is no retry and no outbox: a lost sync stays lost until reindex.
package sync

import (
	"context"
	"log/slog"
	"strconv"

	"catalog/internal/domain/entity"
	domainsearch "catalog/internal/domain/search"
	"catalog/internal/domain/service"
)

// ProductIndexer is the slice of the product index adapter the sink
// and reindexer need.
type ProductIndexer interface {
	Index(ctx context.Context, doc domainsearch.ProductDocument) error
	Delete(ctx context.Context, id string) error
	Bulk(ctx context.Context, docs []domainsearch.ProductDocument) ([]string, error)
}

type productSink struct {
	index  ProductIndexer
	logger *slog.Logger
}

// NewProductSink is the constructor for the product search sync sink.
func NewProductSink(index ProductIndexer, logger *slog.Logger) service.ProductSyncSink {
	return &productSink{
		index:  index,
		logger: logger,
	}
}

func (s *productSink) OnCreate(ctx context.Context, product *entity.Product) {
	doc := domainsearch.NewProductDocument(product)
	if err := s.index.Index(ctx, doc); err != nil {
		s.logFailure(ctx, "create", product.ID, err)
	}
}

func (s *productSink) OnUpdate(ctx context.Context, product *entity.Product) {
	// Full-document upsert: the denormalized facets (category, brand,
	// tags, review count) may all have changed with the update.
	doc := domainsearch.NewProductDocument(product)
	if err := s.index.Index(ctx, doc); err != nil {
		s.logFailure(ctx, "update", product.ID, err)
	}
}

func (s *productSink) OnDelete(ctx context.Context, id uint) {
	if err := s.index.Delete(ctx, strconv.FormatUint(uint64(id), 10)); err != nil {
		s.logFailure(ctx, "delete", id, err)
	}
}

func (s *productSink) logFailure(ctx context.Context, op string, id uint, err error) {
	s.logger.LogAttrs(ctx, slog.LevelError, "product index sync failed",
		slog.String("index", domainsearch.ProductIndex),
		slog.String("operation", op),
		slog.Uint64("productID", uint64(id)),
		slog.String("error", err.Error()),
	)
}
