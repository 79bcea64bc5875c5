package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLimiter(t *testing.T) {
	assert.Nil(t, NewLimiter(0))
	assert.Nil(t, NewLimiter(-1))

	limiter := NewLimiter(2.5)
	require.NotNil(t, limiter)
	assert.Equal(t, 3, limiter.Burst())
}

func TestNewBackendClientForwardsRequestID(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(constvars.HeaderXRequestID)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewBackendClient(&config.InternalConfig{Backend: config.AppBackend{BaseUrl: server.URL, MaxRequestsPerSecond: 100}})

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "CLNC_DSH_test")
	_, err := client.R().SetContext(ctx).Get("/patients")
	require.NoError(t, err)
	assert.Equal(t, "CLNC_DSH_test", seen)
}
