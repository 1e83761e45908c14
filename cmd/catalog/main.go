package main

import (
	"context"
	"log/slog"
	"os"

	"catalog/config"
	"catalog/internal/delivery"
	"catalog/internal/delivery/http"
	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router/handler"
	"catalog/internal/domain/service"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/persistence/postgres"
	"catalog/internal/infra/search"
	"catalog/internal/infra/search/sync"
	"catalog/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectSync(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapIndices,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		search.New,
		search.NewProductIndex,
		search.NewArticleIndex,
		search.NewUserIndex,
		// Port adapters: the typed index adapters back both the read
		// side (searchers) and the write side (sync indexers).
		func(ix *search.ProductIndex) service.ProductSearcher { return ix },
		func(ix *search.ArticleIndex) service.ArticleSearcher { return ix },
		func(ix *search.UserIndex) service.UserSearcher { return ix },
		func(ix *search.ProductIndex) sync.ProductIndexer { return ix },
		func(ix *search.ArticleIndex) sync.ArticleIndexer { return ix },
		func(ix *search.UserIndex) sync.UserIndexer { return ix },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewBrandRepository,
			postgres.NewTagRepository,
			postgres.NewReviewRepository,
			postgres.NewUserRepository,
			postgres.NewArticleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectSync() fx.Option {
	return fx.Options(
		fx.Provide(
			sync.NewProductSink,
			sync.NewArticleSink,
			sync.NewUserSink,
			sync.NewProductReindexer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProductService,
			impl.NewTaxonomyService,
			impl.NewSuggestService,
			impl.NewUserService,
			impl.NewArticleService,
			impl.NewSearchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewCategoryHandler,
			handler.NewBrandHandler,
			handler.NewTagHandler,
			handler.NewUserHandler,
			handler.NewArticleHandler,
			handler.NewSearchHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapIndices creates the index mappings on startup. Failures are
// logged and tolerated, the service degrades to database reads.
func bootstrapIndices(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	products *search.ProductIndex,
	articles *search.ArticleIndex,
	users *search.UserIndex,
) {
	if !cfg.Elasticsearch.BootstrapIndices {
		return
	}

	for name, ensure := range map[string]func(context.Context) error{
		"products": products.Ensure,
		"articles": articles.Ensure,
		"users":    users.Ensure,
	} {
		if err := ensure(ctx); err != nil {
			logger.Warn("Failed to bootstrap search index",
				slog.String("index", name),
				slog.Any("error", err))
		}
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
