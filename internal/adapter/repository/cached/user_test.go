package cached

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"crm-services/internal/adapter/cache"
	"crm-services/internal/domain/user"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, fields user.Update) (*user.User, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset int) ([]user.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]user.User), args.Error(1)
}

func setupCachedRepo(t *testing.T) (*UserRepository, *mockUserRepo, cache.Cache[user.User]) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewRedisCache[user.User](client, "user", time.Minute, zaptest.NewLogger(t))
	next := new(mockUserRepo)
	return NewUserRepository(next, c), next, c
}

func TestCachedUserRepository_GetByID_PrimesCache(t *testing.T) {
	repo, next, c := setupCachedRepo(t)
	ctx := context.Background()

	u := &user.User{ID: 1, Email: "john@example.com", Name: "John"}
	next.On("GetByID", ctx, int64(1)).Return(u, nil).Once()

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	// second read is served from cache, storage untouched
	got, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	next.AssertNumberOfCalls(t, "GetByID", 1)

	cached, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, cached)
}

func TestCachedUserRepository_Create_PrimesCache(t *testing.T) {
	repo, next, c := setupCachedRepo(t)
	ctx := context.Background()

	created := &user.User{ID: 2, Email: "jane@example.com", Name: "Jane"}
	next.On("Create", ctx, mock.Anything).Return(created, nil)

	_, err := repo.Create(ctx, &user.User{Email: created.Email, Name: created.Name})
	require.NoError(t, err)

	cached, err := c.Get(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "jane@example.com", cached.Email)
}

func TestCachedUserRepository_Update_Invalidates(t *testing.T) {
	repo, next, c := setupCachedRepo(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 3, &user.User{ID: 3, Name: "Old"}))

	name := "New"
	next.On("Update", ctx, int64(3), user.Update{Name: &name}).
		Return(&user.User{ID: 3, Name: name}, nil)

	_, err := repo.Update(ctx, 3, user.Update{Name: &name})
	require.NoError(t, err)

	cached, err := c.Get(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestCachedUserRepository_Delete_Invalidates(t *testing.T) {
	repo, next, c := setupCachedRepo(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 4, &user.User{ID: 4, Name: "Gone"}))
	next.On("Delete", ctx, int64(4)).Return(nil)

	require.NoError(t, repo.Delete(ctx, 4))

	cached, err := c.Get(ctx, 4)
	require.NoError(t, err)
	assert.Nil(t, cached)
}
