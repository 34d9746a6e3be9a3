// Package cached decorates the storage repositories with cache-aside
// reads and write-through invalidation. Usecases stay cache-unaware;
// swapping the cache for a noop implementation turns the decorators
// into pass-throughs.
package cached

import (
	"context"
	"strconv"

	"golang.org/x/sync/singleflight"

	"crm-services/internal/adapter/cache"
)

// fetch implements the read path shared by all decorators: serve from
// cache when present, otherwise load from storage under singleflight so
// concurrent misses for the same id issue a single query, then prime
// the cache with the result.
func fetch[T any](ctx context.Context, c cache.Cache[T], g *singleflight.Group, id int64, load func(context.Context, int64) (*T, error)) (*T, error) {
	if rec, err := c.Get(ctx, id); err == nil && rec != nil {
		return rec, nil
	}

	v, err, _ := g.Do(strconv.FormatInt(id, 10), func() (interface{}, error) {
		if rec, err := c.Get(ctx, id); err == nil && rec != nil {
			return rec, nil
		}
		rec, err := load(ctx, id)
		if err != nil {
			return nil, err
		}
		_ = c.Set(ctx, id, rec)
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}
