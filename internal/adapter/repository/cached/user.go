package cached

import (
	"context"

	"golang.org/x/sync/singleflight"

	"crm-services/internal/adapter/cache"
	"crm-services/internal/domain/user"
	usecase "crm-services/internal/usecase/user"
)

// UserRepository wraps a user repository with cache-aside reads.
// Creates prime the cache; updates and deletes invalidate it.
type UserRepository struct {
	next  usecase.Repository
	cache cache.Cache[user.User]
	group singleflight.Group
}

// NewUserRepository creates a cached user repository decorator.
func NewUserRepository(next usecase.Repository, c cache.Cache[user.User]) *UserRepository {
	return &UserRepository{next: next, cache: c}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	created, err := r.next.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Set(ctx, created.ID, created)
	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return fetch(ctx, r.cache, &r.group, id, r.next.GetByID)
}

func (r *UserRepository) Update(ctx context.Context, id int64, fields user.Update) (*user.User, error) {
	updated, err := r.next.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Delete(ctx, id)
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, id)
	return nil
}

// List bypasses the cache; only single-record reads are cached.
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]user.User, error) {
	return r.next.List(ctx, limit, offset)
}
