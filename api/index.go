package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/amirasaad/tripool/infra/initializer"
	"github.com/amirasaad/tripool/pkg/app"
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/webapi"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

var (
	once    sync.Once
	served  http.HandlerFunc
	bootErr error
)

// Handler is the main entry point of the application.
// Think of it like the main() method
func Handler(w http.ResponseWriter, r *http.Request) {
	// This is needed to set the proper request path in `*fiber.Ctx`
	r.RequestURI = r.URL.String()

	once.Do(func() { served, bootErr = handler() })
	if bootErr != nil {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"about:blank","title":"Service unavailable","status":500}`))
		return
	}
	served.ServeHTTP(w, r)
}

// building the fiber application
func handler() (http.HandlerFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	// Initialize DB connection and cache ONCE per instance
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, err
	}
	a := app.New(deps, cfg)
	a.Warm(context.Background())
	return adaptor.FiberApp(webapi.SetupApp(a)), nil
}
