package sync

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/repository"
	domainsearch "catalog/internal/domain/search"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
)

type productReindexer struct {
	productRepo repository.ProductRepository
	index       ProductIndexer
	batchSize   int
	logger      *slog.Logger
}

// NewProductReindexer builds the bulk reindex operation. Reindexing is
// the only reconciliation mechanism for index documents that diverged
// after a failed sync; documents are keyed by entity id, so running it
// repeatedly converges on the same index state.
func NewProductReindexer(
	productRepo repository.ProductRepository,
	index ProductIndexer,
	cfg *config.Config,
	logger *slog.Logger,
) service.ProductReindexer {
	return &productReindexer{
		productRepo: productRepo,
		index:       index,
		batchSize:   cfg.Reindex.BatchSize,
		logger:      logger,
	}
}

func (r *productReindexer) Reindex(ctx context.Context) (indexed int, failed int, err error) {
	offset := 0

	for {
		products, err := r.productRepo.FindAll(ctx, r.batchSize, offset)
		if err != nil {
			return indexed, failed, errors.Wrap(err, "failed to page products for reindex")
		}
		if len(products) == 0 {
			break
		}

		docs := make([]domainsearch.ProductDocument, 0, len(products))
		for _, product := range products {
			docs = append(docs, domainsearch.NewProductDocument(product))
		}

		failedIDs, bulkErr := r.index.Bulk(ctx, docs)
		switch {
		case bulkErr != nil:
			// Whole-batch failure. Log and move on, the remaining
			// batches may still succeed.
			r.logger.LogAttrs(ctx, slog.LevelError, "reindex batch failed",
				slog.Int("offset", offset),
				slog.Int("batchSize", len(docs)),
				slog.String("error", bulkErr.Error()),
			)
			failed += len(docs)
		case len(failedIDs) > 0:
			r.logger.LogAttrs(ctx, slog.LevelError, "reindex batch had item failures",
				slog.Int("offset", offset),
				slog.Any("documentIDs", failedIDs),
			)
			failed += len(failedIDs)
			indexed += len(docs) - len(failedIDs)
		default:
			indexed += len(docs)
		}

		if len(products) < r.batchSize {
			break
		}
		offset += r.batchSize
	}

	r.logger.Info("product reindex finished",
		slog.Int("indexed", indexed),
		slog.Int("failed", failed),
	)

	return indexed, failed, nil
}
