package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the per-IP limiter for every route and a
// stricter per-minute one for export downloads.
func (m *Middlewares) CreateRateLimiters() (normalLimiter, exportLimiter func(next http.Handler) http.Handler) {
	normalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
	exportLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxExportRequestsPerMinute, time.Minute)
	return normalLimiter, exportLimiter
}
