package ratelimiter

import (
	"context"
	"testing"
	"time"

	"clinic-dashboard/internal/app/services/shared/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWindowLimiterAllow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	limiter := NewWindowLimiter(redis.NewRedisRepository(client), zap.NewNop(), "archive", time.Minute, 2)
	fixed := time.Date(2024, 1, 1, 10, 0, 30, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, _, err := limiter.Allow(ctx, "patient_42")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retryAfter, err := limiter.Allow(ctx, "patient_42")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 31, retryAfter)

	allowed, _, err = limiter.Allow(ctx, "patient_7")
	require.NoError(t, err)
	assert.True(t, allowed, "quotas are per resource")
}

func TestWindowLimiterDisabled(t *testing.T) {
	limiter := NewWindowLimiter(nil, zap.NewNop(), "archive", time.Minute, 0)
	allowed, _, err := limiter.Allow(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, allowed)
}
