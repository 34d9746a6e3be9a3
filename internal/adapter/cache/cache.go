package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache defines the caching operations for an entity record keyed by id.
// Implementations are best-effort: a miss, an expired entry or a transport
// failure must never be treated as "the entity does not exist".
type Cache[T any] interface {
	// Get retrieves a record from cache by ID.
	// Returns nil if the record is not cached.
	Get(ctx context.Context, id int64) (*T, error)

	// Set stores a record in cache with the configured TTL.
	Set(ctx context.Context, id int64, record *T) error

	// Delete removes a record from cache by ID.
	Delete(ctx context.Context, id int64) error
}

// RedisCache implements Cache using Redis as the backing store. Records are
// stored as JSON under "<prefix>:<id>".
type RedisCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisCache creates a new Redis-backed record cache.
func NewRedisCache[T any](client *redis.Client, prefix string, ttl time.Duration, log *zap.Logger) *RedisCache[T] {
	return &RedisCache[T]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		log:    log,
	}
}

func (c *RedisCache[T]) key(id int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}

// Get retrieves a record from Redis cache.
func (c *RedisCache[T]) Get(ctx context.Context, id int64) (*T, error) {
	key := c.key(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("cache miss", zap.String("key", key))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	var record T
	if err := json.Unmarshal(data, &record); err != nil {
		c.log.Error("failed to unmarshal cached record", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.String("key", key))
	return &record, nil
}

// Set stores a record in Redis cache with TTL.
func (c *RedisCache[T]) Set(ctx context.Context, id int64, record *T) error {
	if record == nil {
		return fmt.Errorf("cannot cache nil record")
	}

	key := c.key(id)

	data, err := json.Marshal(record)
	if err != nil {
		c.log.Error("failed to marshal record for cache", zap.String("key", key), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.String("key", key), zap.Error(err))
		return err
	}

	c.log.Debug("cached record", zap.String("key", key), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes a record from Redis cache.
func (c *RedisCache[T]) Delete(ctx context.Context, id int64) error {
	key := c.key(id)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.String("key", key), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.String("key", key))
	return nil
}

// NoopCache is the capability stub selected at composition time when Redis
// is disabled. Reads always miss; writes succeed without effect.
type NoopCache[T any] struct{}

// NewNoopCache creates a cache that does nothing.
func NewNoopCache[T any]() *NoopCache[T] {
	return &NoopCache[T]{}
}

// Get always reports a miss.
func (NoopCache[T]) Get(ctx context.Context, id int64) (*T, error) { return nil, nil }

// Set discards the record.
func (NoopCache[T]) Set(ctx context.Context, id int64, record *T) error { return nil }

// Delete does nothing.
func (NoopCache[T]) Delete(ctx context.Context, id int64) error { return nil }
