package profiles

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/utils"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackRefreshSpec = "@every 5m"

// RefreshWorker periodically reloads the active profile so changes made
// outside this process show up without a page event.
type RefreshWorker struct {
	log     *zap.Logger
	profile contracts.ProfileController
	spec    string
	timeout time.Duration

	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewRefreshWorker(log *zap.Logger, profile contracts.ProfileController, spec string, timeout time.Duration) *RefreshWorker {
	return &RefreshWorker{log: log, profile: profile, spec: spec, timeout: timeout}
}

// Start schedules the refresh. An invalid spec falls back to every five minutes.
func (w *RefreshWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("RefreshWorker.Start invalid cron spec, falling back",
			zap.String("spec", w.spec),
			zap.String("fallback", fallbackRefreshSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackRefreshSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running refresh to finish.
func (w *RefreshWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *RefreshWorker) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if timeout := w.timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	requestID := utils.GenerateRequestID()
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)

	_ = utils.LogOperation(w.log, "profile_refresh", requestID, func() error {
		w.profile.Reload(ctx)
		return nil
	})
}
