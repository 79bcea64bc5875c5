package contracts

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GetDel(ctx context.Context, key string) (string, error)
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
	Publish(ctx context.Context, channel string, value interface{}) error
	Subscribe(ctx context.Context, channel string) *redis.PubSub
}
