package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"crm-services/internal/domain/user"
	pkgerrors "crm-services/pkg/errors"
)

func setupTestDB(t *testing.T, schemas ...any) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(schemas...))

	return db
}

func setupUserRepo(t *testing.T) *UserRepoPG {
	db := setupTestDB(t, &UserSchema{})
	return NewUserRepoPG(db, zaptest.NewLogger(t))
}

func TestUserRepoPG_Create(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &user.User{
		Email: "john@example.com",
		Name:  "John Doe",
		Role:  "user",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "john@example.com", created.Email)
	assert.True(t, created.Active)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUserRepoPG_Create_DuplicateEmail(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Email: "john@example.com", Name: "John", Role: "user"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &user.User{Email: "john@example.com", Name: "Other", Role: "user"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsAlreadyExists(err))
}

func TestUserRepoPG_GetByID_NotFound(t *testing.T) {
	repo := setupUserRepo(t)

	_, err := repo.GetByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestUserRepoPG_Update_Partial(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &user.User{Email: "john@example.com", Name: "John", Role: "user"})
	require.NoError(t, err)

	newName := "Johnny"
	updated, err := repo.Update(ctx, created.ID, user.Update{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Johnny", updated.Name)
	// untouched fields survive
	assert.Equal(t, "john@example.com", updated.Email)
	assert.Equal(t, "user", updated.Role)
	assert.True(t, updated.Active)
}

func TestUserRepoPG_Update_Deactivate(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &user.User{Email: "john@example.com", Name: "John", Role: "user"})
	require.NoError(t, err)

	inactive := false
	updated, err := repo.Update(ctx, created.ID, user.Update{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestUserRepoPG_Update_NotFound(t *testing.T) {
	repo := setupUserRepo(t)

	name := "Nobody"
	_, err := repo.Update(context.Background(), 999, user.Update{Name: &name})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestUserRepoPG_Delete(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &user.User{Email: "john@example.com", Name: "John", Role: "user"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestUserRepoPG_Delete_NotFound(t *testing.T) {
	repo := setupUserRepo(t)

	err := repo.Delete(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestUserRepoPG_List_Pagination(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &user.User{
			Email: fmt.Sprintf("user%d@example.com", i),
			Name:  fmt.Sprintf("User %d", i),
			Role:  "user",
		})
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 3)

	// newest first
	all, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt))
	}
}
