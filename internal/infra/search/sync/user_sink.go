package sync

import (
	"context"
	"log/slog"
	"strconv"

	"catalog/internal/domain/entity"
	domainsearch "catalog/internal/domain/search"
	"catalog/internal/domain/service"
)

// UserIndexer is the slice of the user index adapter the sink needs.
type UserIndexer interface {
	Index(ctx context.Context, doc domainsearch.UserDocument) error
	Update(ctx context.Context, id string, partial map[string]any) error
	Delete(ctx context.Context, id string) error
}

type userSink struct {
	index  UserIndexer
	logger *slog.Logger
}

// NewUserSink is the constructor for the user search sync sink.
func NewUserSink(index UserIndexer, logger *slog.Logger) service.UserSyncSink {
	return &userSink{
		index:  index,
		logger: logger,
	}
}

func (s *userSink) OnCreate(ctx context.Context, user *entity.User) {
	doc := domainsearch.NewUserDocument(user)
	if err := s.index.Index(ctx, doc); err != nil {
		s.logFailure(ctx, "create", user.ID, err)
	}
}

func (s *userSink) OnUpdate(ctx context.Context, user *entity.User) {
	// Email is immutable after registration, only the name can change.
	partial := map[string]any{
		"name":      user.Name,
		"updatedAt": user.UpdatedAt,
	}
	if err := s.index.Update(ctx, strconv.FormatUint(uint64(user.ID), 10), partial); err != nil {
		s.logFailure(ctx, "update", user.ID, err)
	}
}

func (s *userSink) OnDelete(ctx context.Context, id uint) {
	if err := s.index.Delete(ctx, strconv.FormatUint(uint64(id), 10)); err != nil {
		s.logFailure(ctx, "delete", id, err)
	}
}

func (s *userSink) logFailure(ctx context.Context, op string, id uint, err error) {
	s.logger.LogAttrs(ctx, slog.LevelError, "user index sync failed",
		slog.String("index", domainsearch.UserIndex),
		slog.String("operation", op),
		slog.Uint64("userID", uint64(id)),
		slog.String("error", err.Error()),
	)
}
