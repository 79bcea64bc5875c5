package contracts

import "context"

type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// UIStateStore keeps the per-screen editing id and one pending flash message.
type UIStateStore interface {
	GetEditingID(ctx context.Context, screen string) (*int64, error)
	SetEditingID(ctx context.Context, screen string, id *int64) error
	PushFlash(ctx context.Context, screen string, flash Flash) error
	PopFlash(ctx context.Context, screen string) (*Flash, error)
}
