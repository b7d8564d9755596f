package webapi_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/tripool/infra/cache"
	"github.com/amirasaad/tripool/internal/fixtures/mocks"
	"github.com/amirasaad/tripool/pkg/app"
	pkgcache "github.com/amirasaad/tripool/pkg/cache"
	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, maxRequests int) *fiber.App {
	t.Helper()
	// Create app with stricter rate limits for testing
	cfg := &config.App{
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "secret", Expiry: time.Hour}},
		RateLimit: &config.RateLimit{MaxRequests: maxRequests, Window: time.Second},
	}
	store := cache.NewMemoryCache(clock.Real{})
	t.Cleanup(store.Close)
	deps := &config.Deps{
		// Only unauthenticated routes that never reach the database are hit.
		Uow:       mocks.NewMockUnitOfWork(t),
		Directory: pkgcache.NewDirectory(store, time.Minute, clock.Real{}),
		Clock:     clock.Real{},
		Logger:    slog.Default(),
		Config:    cfg,
	}
	return webapi.SetupApp(app.New(deps, cfg))
}

func TestRateLimit(t *testing.T) {
	fiberApp := newTestApp(t, 5)

	// Send requests until rate limit is hit
	for i := 0; i < 6; i++ {
		resp, err := fiberApp.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close() //nolint: errcheck

		if i < 5 {
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "Expected OK for request %d", i+1)
		} else {
			assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode, "Expected rate limit for request %d", i+1)
			assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
		}
	}
}

func TestRateLimitPerForwardedClient(t *testing.T) {
	fiberApp := newTestApp(t, 1)

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint: errcheck
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, send("10.0.0.1, 172.16.0.1"))
	assert.Equal(t, fiber.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, fiber.StatusOK, send("10.0.0.2"))
}

func TestUnknownRouteIsProblem(t *testing.T) {
	fiberApp := newTestApp(t, 100)

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
}
