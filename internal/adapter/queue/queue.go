package queue

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PaymentQueueName is the Redis list that hands payment ids to the
// downstream processor. Only the producer side lives in this repo.
const PaymentQueueName = "payment_queue"

// Producer pushes entity ids onto a work queue for asynchronous downstream
// processing.
type Producer interface {
	Push(ctx context.Context, id int64) error
}

// RedisProducer implements Producer on a Redis list.
type RedisProducer struct {
	client *redis.Client
	name   string
	log    *zap.Logger
}

// NewRedisProducer creates a producer for the named Redis list.
func NewRedisProducer(client *redis.Client, name string, log *zap.Logger) *RedisProducer {
	return &RedisProducer{client: client, name: name, log: log}
}

// Push prepends the id to the list.
func (p *RedisProducer) Push(ctx context.Context, id int64) error {
	if err := p.client.LPush(ctx, p.name, strconv.FormatInt(id, 10)).Err(); err != nil {
		p.log.Error("failed to push to work queue", zap.String("queue", p.name), zap.Int64("id", id), zap.Error(err))
		return err
	}

	p.log.Debug("pushed to work queue", zap.String("queue", p.name), zap.Int64("id", id))
	return nil
}

// NoopProducer is the capability stub selected at composition time when
// Redis is disabled.
type NoopProducer struct{}

// NewNoopProducer creates a producer that discards pushes.
func NewNoopProducer() *NoopProducer {
	return &NoopProducer{}
}

// Push discards the id.
func (NoopProducer) Push(ctx context.Context, id int64) error { return nil }
