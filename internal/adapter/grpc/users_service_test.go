package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "crm-services/api/gen/go/users"
	domain "crm-services/internal/domain/user"
	"crm-services/internal/usecase/user"
	pkgerrors "crm-services/pkg/errors"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) CreateUser(ctx context.Context, in user.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUsecase) UpdateUser(ctx context.Context, in user.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUsecase) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserUsecase) ListUsers(ctx context.Context, in user.ListUsersRequest) ([]domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).([]domain.User), args.Error(1)
}

func TestUsersService_GetUser(t *testing.T) {
	uc := new(mockUserUsecase)
	svc := NewUsersServiceServer(uc)
	ctx := context.Background()

	uc.On("GetUser", ctx, int64(1)).
		Return(&domain.User{ID: 1, Email: "john@example.com", Name: "John", Role: "user", Active: true}, nil)

	resp, err := svc.GetUser(ctx, &pb.GetUserRequest{Id: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.GetId())
	assert.Equal(t, "john@example.com", resp.GetEmail())
	assert.True(t, resp.GetActive())
}

func TestUsersService_GetUser_NotFound(t *testing.T) {
	uc := new(mockUserUsecase)
	svc := NewUsersServiceServer(uc)
	ctx := context.Background()

	uc.On("GetUser", ctx, int64(9)).
		Return(nil, pkgerrors.NewNotFoundError("user", "user not found"))

	_, err := svc.GetUser(ctx, &pb.GetUserRequest{Id: 9})

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestUsersService_CreateUser_AlreadyExists(t *testing.T) {
	uc := new(mockUserUsecase)
	svc := NewUsersServiceServer(uc)
	ctx := context.Background()

	uc.On("CreateUser", ctx, mock.Anything).
		Return(nil, pkgerrors.NewAlreadyExistsError("user", "email already exists"))

	_, err := svc.CreateUser(ctx, &pb.CreateUserRequest{Email: "dup@example.com", Name: "Dup"})

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.AlreadyExists, st.Code())
	assert.Equal(t, "email already exists", st.Message())
}

func TestUsersService_CreateUser_Success(t *testing.T) {
	uc := new(mockUserUsecase)
	svc := NewUsersServiceServer(uc)
	ctx := context.Background()

	uc.On("CreateUser", ctx, user.CreateUserRequest{Email: "a@example.com", Name: "A", Role: "admin"}).
		Return(&domain.User{ID: 2, Email: "a@example.com", Name: "A", Role: "admin", Active: true}, nil)

	resp, err := svc.CreateUser(ctx, &pb.CreateUserRequest{Email: "a@example.com", Name: "A", Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, "admin", resp.GetRole())
}
