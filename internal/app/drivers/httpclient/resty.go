package httpclient

import (
	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/pkg/constvars"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// NewBackendClient builds the shared HTTP client for the clinic REST backend.
// No retries are configured: a failed call is reported once.
func NewBackendClient(internalConfig *config.InternalConfig) *resty.Client {
	client := resty.New().
		SetBaseURL(internalConfig.Backend.BaseUrl).
		SetHeader(constvars.HeaderContentType, constvars.MIMEApplicationJSON).
		SetHeader(constvars.HeaderAccept, constvars.MIMEApplicationJSON).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	if internalConfig.Backend.TimeoutInSeconds > 0 {
		client.SetTimeout(time.Duration(internalConfig.Backend.TimeoutInSeconds) * time.Second)
	}

	if limiter := NewLimiter(internalConfig.Backend.MaxRequestsPerSecond); limiter != nil {
		client.OnBeforeRequest(func(c *resty.Client, r *resty.Request) error {
			return limiter.Wait(r.Context())
		})
	}

	client.OnBeforeRequest(func(c *resty.Client, r *resty.Request) error {
		if requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok && requestID != "" {
			r.SetHeader(constvars.HeaderXRequestID, requestID)
		}
		return nil
	})

	return client
}

// NewLimiter returns nil for a non-positive rate.
func NewLimiter(requestsPerSecond float64) *rate.Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	burst := int(math.Ceil(requestsPerSecond))
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}
