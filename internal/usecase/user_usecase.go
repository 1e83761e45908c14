package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// CreateUserInput represents the input for creating a user.
type CreateUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// UpdateUserInput represents the input for updating a user. Email is
// immutable.
type UpdateUserInput struct {
	Name *string `json:"name,omitempty"`
}

// UserUsecase defines the user management use cases.
type UserUsecase interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uint) error
}
