package forms

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/constvars"
	"context"
)

// Editor is the create/edit switch of one screen's form. No editing id
// means Create mode.
type Editor struct {
	store  contracts.UIStateStore
	screen string
}

func NewEditor(store contracts.UIStateStore, screen string) *Editor {
	return &Editor{store: store, screen: screen}
}

func (e *Editor) Screen() string {
	return e.screen
}

// Mode returns the id being edited, or nil in Create mode.
func (e *Editor) Mode(ctx context.Context) (*int64, error) {
	return e.store.GetEditingID(ctx, e.screen)
}

func (e *Editor) Begin(ctx context.Context, id int64) error {
	return e.store.SetEditingID(ctx, e.screen, &id)
}

func (e *Editor) Reset(ctx context.Context) error {
	return e.store.SetEditingID(ctx, e.screen, nil)
}

func (e *Editor) Success(ctx context.Context, message string) error {
	return e.store.PushFlash(ctx, e.screen, contracts.Flash{Level: constvars.AlertLevelSuccess, Message: message})
}

func (e *Editor) Failure(ctx context.Context, message string) error {
	return e.store.PushFlash(ctx, e.screen, contracts.Flash{Level: constvars.AlertLevelError, Message: message})
}

func (e *Editor) TakeFlash(ctx context.Context) (*contracts.Flash, error) {
	return e.store.PopFlash(ctx, e.screen)
}
