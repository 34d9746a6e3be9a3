package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

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

func setupUserRouter(t *testing.T) (*gin.Engine, *mockUserUsecase) {
	gin.SetMode(gin.TestMode)
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, zaptest.NewLogger(t))

	r := gin.New()
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
	return r, uc
}

func TestUserHandler_CreateUser(t *testing.T) {
	r, uc := setupUserRouter(t)

	uc.On("CreateUser", mock.Anything, user.CreateUserRequest{Email: "john@example.com", Name: "John"}).
		Return(&domain.User{ID: 1, Email: "john@example.com", Name: "John", Role: "user", Active: true}, nil)

	body := bytes.NewBufferString(`{"email":"john@example.com","name":"John"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "user", resp.Role)
	assert.True(t, resp.Active)
}

func TestUserHandler_CreateUser_Conflict(t *testing.T) {
	r, uc := setupUserRouter(t)

	uc.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, pkgerrors.NewAlreadyExistsError("user", "email already exists"))

	body := bytes.NewBufferString(`{"email":"dup@example.com","name":"Dup"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already_exists", resp.Error)
}

func TestUserHandler_CreateUser_MissingBody(t *testing.T) {
	r, uc := setupUserRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "CreateUser")
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	r, uc := setupUserRouter(t)

	uc.On("GetUser", mock.Anything, int64(99)).
		Return(nil, pkgerrors.NewNotFoundError("user", "user not found"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_GetUser_BadID(t *testing.T) {
	r, uc := setupUserRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "GetUser")
}

func TestUserHandler_UpdateUser_Partial(t *testing.T) {
	r, uc := setupUserRouter(t)

	name := "Johnny"
	uc.On("UpdateUser", mock.Anything, user.UpdateUserRequest{ID: 5, Name: &name}).
		Return(&domain.User{ID: 5, Email: "j@example.com", Name: name, Role: "user", Active: true}, nil)

	body := bytes.NewBufferString(`{"name":"Johnny"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/5", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Johnny", resp.Name)
}

func TestUserHandler_ListUsers(t *testing.T) {
	r, uc := setupUserRouter(t)

	uc.On("ListUsers", mock.Anything, user.ListUsersRequest{Limit: 2, Offset: 1}).
		Return([]domain.User{
			{ID: 2, Email: "b@example.com", Name: "B"},
			{ID: 1, Email: "a@example.com", Name: "A"},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users?limit=2&offset=1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ListUsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Users, 2)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	r, uc := setupUserRouter(t)

	uc.On("DeleteUser", mock.Anything, int64(7)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/users/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
