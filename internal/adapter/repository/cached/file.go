package cached

import (
	"context"

	"golang.org/x/sync/singleflight"

	"crm-services/internal/adapter/cache"
	"crm-services/internal/domain/file"
	usecase "crm-services/internal/usecase/file"
)

// FileRepository wraps a file metadata repository with cache-aside
// reads. File records are immutable, so only deletes invalidate.
type FileRepository struct {
	next  usecase.Repository
	cache cache.Cache[file.File]
	group singleflight.Group
}

// NewFileRepository creates a cached file repository decorator.
func NewFileRepository(next usecase.Repository, c cache.Cache[file.File]) *FileRepository {
	return &FileRepository{next: next, cache: c}
}

func (r *FileRepository) Create(ctx context.Context, f *file.File) (*file.File, error) {
	created, err := r.next.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	_ = r.cache.Set(ctx, created.ID, created)
	return created, nil
}

func (r *FileRepository) GetByID(ctx context.Context, id int64) (*file.File, error) {
	return fetch(ctx, r.cache, &r.group, id, r.next.GetByID)
}

func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, id)
	return nil
}

// List bypasses the cache; only single-record reads are cached.
func (r *FileRepository) List(ctx context.Context, userID *int64, limit, offset int) ([]file.File, error) {
	return r.next.List(ctx, userID, limit, offset)
}
