package uistate

import (
	"clinic-dashboard/internal/app/contracts"
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.Mutex
	editing map[string]int64
	flashes map[string]contracts.Flash
}

func NewMemoryStore() contracts.UIStateStore {
	return &memoryStore{
		editing: make(map[string]int64),
		flashes: make(map[string]contracts.Flash),
	}
}

func (s *memoryStore) GetEditingID(ctx context.Context, screen string) (*int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.editing[screen]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (s *memoryStore) SetEditingID(ctx context.Context, screen string, id *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == nil {
		delete(s.editing, screen)
		return nil
	}
	s.editing[screen] = *id
	return nil
}

func (s *memoryStore) PushFlash(ctx context.Context, screen string, flash contracts.Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[screen] = flash
	return nil
}

func (s *memoryStore) PopFlash(ctx context.Context, screen string) (*contracts.Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flash, ok := s.flashes[screen]
	if !ok {
		return nil, nil
	}
	delete(s.flashes, screen)
	return &flash, nil
}
