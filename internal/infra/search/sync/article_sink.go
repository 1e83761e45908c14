package sync

import (
	"context"
	"log/slog"
	"strconv"

	"catalog/internal/domain/entity"
	domainsearch "catalog/internal/domain/search"
	"catalog/internal/domain/service"
)

// ArticleIndexer is the slice of the article index adapter the sink needs.
type ArticleIndexer interface {
	Index(ctx context.Context, doc domainsearch.ArticleDocument) error
	Update(ctx context.Context, id string, partial map[string]any) error
	Delete(ctx context.Context, id string) error
}

type articleSink struct {
	index  ArticleIndexer
	logger *slog.Logger
}

// NewArticleSink is the constructor for the article search sync sink.
func NewArticleSink(index ArticleIndexer, logger *slog.Logger) service.ArticleSyncSink {
	return &articleSink{
		index:  index,
		logger: logger,
	}
}

func (s *articleSink) OnCreate(ctx context.Context, article *entity.Article) {
	doc := domainsearch.NewArticleDocument(article)
	if err := s.index.Index(ctx, doc); err != nil {
		s.logFailure(ctx, "create", article.ID, err)
	}
}

func (s *articleSink) OnUpdate(ctx context.Context, article *entity.Article) {
	partial := map[string]any{
		"title":     article.Title,
		"content":   article.Content,
		"summary":   article.Summary,
		"published": article.Published,
		"updatedAt": article.UpdatedAt,
	}
	if err := s.index.Update(ctx, strconv.FormatUint(uint64(article.ID), 10), partial); err != nil {
		s.logFailure(ctx, "update", article.ID, err)
	}
}

func (s *articleSink) OnDelete(ctx context.Context, id uint) {
	if err := s.index.Delete(ctx, strconv.FormatUint(uint64(id), 10)); err != nil {
		s.logFailure(ctx, "delete", id, err)
	}
}

func (s *articleSink) logFailure(ctx context.Context, op string, id uint, err error) {
	s.logger.LogAttrs(ctx, slog.LevelError, "article index sync failed",
		slog.String("index", domainsearch.ArticleIndex),
		slog.String("operation", op),
		slog.Uint64("articleID", uint64(id)),
		slog.String("error", err.Error()),
	)
}
