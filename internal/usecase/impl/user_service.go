package impl

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/usecase"
)

type userService struct {
	userRepo repository.UserRepository
	sink     service.UserSyncSink
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo repository.UserRepository, sink service.UserSyncSink) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		sink:     sink,
	}
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	users, err := s.userRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// CreateUser persists a new user, then syncs the index best-effort.
func (s *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	user := &entity.User{
		Email: input.Email,
		Name:  input.Name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.sink.OnCreate(ctx, user)

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	updated, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	s.sink.OnUpdate(ctx, updated)

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	s.sink.OnDelete(ctx, id)

	return nil
}
