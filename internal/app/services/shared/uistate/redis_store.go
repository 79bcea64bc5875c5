package uistate

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// redisStore shares the UI state between dashboard instances.
type redisStore struct {
	redis contracts.RedisRepository
	ttl   time.Duration
}

func NewRedisStore(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.UIStateStore {
	return &redisStore{redis: redisRepository, ttl: ttl}
}

func editingKey(screen string) string {
	return fmt.Sprintf("%s:%s:editing", constvars.RedisUIStateKeyBase, screen)
}

func flashKey(screen string) string {
	return fmt.Sprintf("%s:%s:flash", constvars.RedisUIStateKeyBase, screen)
}

func (s *redisStore) GetEditingID(ctx context.Context, screen string) (*int64, error) {
	raw, err := s.redis.Get(ctx, editingKey(screen))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var id int64
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &id, nil
}

func (s *redisStore) SetEditingID(ctx context.Context, screen string, id *int64) error {
	if id == nil {
		return s.redis.Delete(ctx, editingKey(screen))
	}
	return s.redis.Set(ctx, editingKey(screen), *id, s.ttl)
}

func (s *redisStore) PushFlash(ctx context.Context, screen string, flash contracts.Flash) error {
	return s.redis.Set(ctx, flashKey(screen), flash, s.ttl)
}

func (s *redisStore) PopFlash(ctx context.Context, screen string) (*contracts.Flash, error) {
	raw, err := s.redis.GetDel(ctx, flashKey(screen))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	flash := new(contracts.Flash)
	if err := json.Unmarshal([]byte(raw), flash); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return flash, nil
}
