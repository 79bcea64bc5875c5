package ratelimiter

import (
	"clinic-dashboard/internal/app/contracts"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// WindowLimiter is a fixed-window counter kept in Redis, shared by every
// dashboard instance. Keys expire with their window.
type WindowLimiter struct {
	redis    contracts.RedisRepository
	log      *zap.Logger
	group    string
	window   time.Duration
	maxQuota int
	now      func() time.Time
}

func NewWindowLimiter(redis contracts.RedisRepository, log *zap.Logger, group string, window time.Duration, maxQuota int) *WindowLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &WindowLimiter{
		redis:    redis,
		log:      log,
		group:    strings.ToUpper(strings.TrimSpace(group)),
		window:   window,
		maxQuota: maxQuota,
		now:      time.Now,
	}
}

// Allow counts one hit for resourceName. When the quota is spent it returns
// false and the seconds until the next window.
func (l *WindowLimiter) Allow(ctx context.Context, resourceName string) (bool, int, error) {
	if l.maxQuota <= 0 {
		return true, 0, nil
	}

	resource := strings.ToLower(strings.TrimSpace(resourceName))
	windowSec := int64(l.window / time.Second)
	if windowSec <= 0 {
		windowSec = 1
	}
	now := l.now().UTC()
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", l.group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, l.window+time.Second)
	if err != nil {
		l.log.Error("WindowLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		return false, 0, err
	}

	if count > l.maxQuota {
		nextWindowStart := (windowID + 1) * windowSec
		return false, int(nextWindowStart-now.Unix()) + 1, nil
	}
	return true, 0, nil
}
