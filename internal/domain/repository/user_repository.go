package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"
)

// ErrUserNotFound is returned when the requested user does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository provides typed CRUD access to users.
type UserRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)

	// Search is the database fallback for full-text user search:
	// case-insensitive substring match on name and email.
	Search(ctx context.Context, query string, limit, offset int) ([]*entity.User, int64, error)
}
