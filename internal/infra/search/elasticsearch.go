// Package search implements the search-index adapter on Elasticsearch:
// client construction, index mappings, query construction and the
// typed per-index operations used by the sync sinks and usecases.
package search

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/lifecycle"
	"catalog/internal/errors"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the process-wide Elasticsearch client. The startup ping
// is advisory: an unreachable cluster is logged, not fatal, because
// every read degrades to the database and every write is best-effort.
func New(params Params) (*elasticsearch.Client, error) {
	cfg := elasticsearch.Config{
		Addresses: params.Config.Elasticsearch.Addresses,
		Username:  params.Config.Elasticsearch.Username,
		Password:  params.Config.Elasticsearch.Password,
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Elasticsearch client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			res, err := client.Ping(client.Ping.WithContext(ctx))
			if err != nil {
				params.Logger.Warn("Elasticsearch unreachable, search will degrade to database",
					slog.Any("error", err))

				return nil
			}
			defer res.Body.Close()

			if res.IsError() {
				params.Logger.Warn("Elasticsearch ping failed, search will degrade to database",
					slog.String("status", res.Status()))
			}

			return nil
		},
	})

	return client, nil
}
