package controllers

import (
	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/app/delivery/http/views"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// requestContext bounds a handler's backend work by the configured timeout.
func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}

func redirectTo(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, constvars.StatusSeeOther)
}

// idParam reads the {id} route parameter. ok is false for anything that is
// not a positive number.
func idParam(r *http.Request) (int64, bool) {
	return utils.ParseID(chi.URLParam(r, constvars.URLParamID))
}

func renderScreen(log *zap.Logger, renderer *views.Renderer, w http.ResponseWriter, r *http.Request, data views.ScreenData) {
	if err := renderer.Render(w, data); err != nil {
		log.Error("controllers.renderScreen error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingScreenKey, data.Screen),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, err)
	}
}

// optionalID parses a select value; blank or malformed means no selection.
func optionalID(raw string) *int64 {
	id, ok := utils.ParseID(raw)
	if !ok {
		return nil
	}
	return &id
}

// parseAmount treats a malformed amount as zero so the form's required check
// reports it.
func parseAmount(raw string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return amount
}
