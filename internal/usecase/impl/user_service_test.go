package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sink := mockSvc.NewMockUserSyncSink(t)
	service := NewUserService(userRepo, sink)
	ctx := context.Background()

	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 3
		}).
		Return(nil)
	sink.On("OnCreate", ctx, mock.AnythingOfType("*entity.User")).Return()

	user, err := service.CreateUser(ctx, &usecase.CreateUserInput{
		Email: "a@example.com",
		Name:  "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sink := mockSvc.NewMockUserSyncSink(t)
	service := NewUserService(userRepo, sink)
	ctx := context.Background()

	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("create user"))

	_, err := service.CreateUser(ctx, &usecase.CreateUserInput{
		Email: "a@example.com",
		Name:  "Alice",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	sink.AssertNotCalled(t, "OnCreate", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sink := mockSvc.NewMockUserSyncSink(t)
	service := NewUserService(userRepo, sink)
	ctx := context.Background()

	stored := &entity.User{ID: 3, Email: "a@example.com", Name: "Alice"}
	userRepo.On("FindByID", ctx, uint(3)).Return(stored, nil).Twice()
	userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "Alicia"
	})).Return(nil)
	sink.On("OnUpdate", ctx, mock.AnythingOfType("*entity.User")).Return()

	name := "Alicia"
	updated, err := service.UpdateUser(ctx, 3, &usecase.UpdateUserInput{Name: &name})
	require.NoError(t, err)
	assert.NotNil(t, updated)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sink := mockSvc.NewMockUserSyncSink(t)
	service := NewUserService(userRepo, sink)
	ctx := context.Background()

	userRepo.On("Delete", ctx, uint(99)).Return(repository.ErrUserNotFound)

	err := service.DeleteUser(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	sink.AssertNotCalled(t, "OnDelete", mock.Anything, mock.Anything)
}
