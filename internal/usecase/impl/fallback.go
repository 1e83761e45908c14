// Package impl contains the use case implementations.
package impl

import (
	"context"
	"log/slog"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"
)

// runWithFallback tries the index path first and degrades to the
// database when it fails. The index error is logged, never returned.
// Only a failure of both paths surfaces, as a search-unavailable error.
func runWithFallback[T any](
	ctx context.Context,
	logger *slog.Logger,
	op string,
	primary func(context.Context) (T, error),
	fallback func(context.Context) (T, error),
) (T, usecase.Outcome, error) {
	result, err := primary(ctx)
	if err == nil {
		return result, usecase.OutcomeIndex, nil
	}

	logger.LogAttrs(ctx, slog.LevelWarn, "index read failed, falling back to database",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)

	result, fbErr := fallback(ctx)
	if fbErr != nil {
		logger.LogAttrs(ctx, slog.LevelError, "database fallback failed",
			slog.String("operation", op),
			slog.String("error", fbErr.Error()),
		)

		var zero T

		return zero, usecase.OutcomeFallback, domainerrors.ErrSearchUnavailable.WrapMessage(op)
	}

	return result, usecase.OutcomeFallback, nil
}
