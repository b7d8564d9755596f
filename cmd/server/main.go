package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/tripool/infra/initializer"
	"github.com/amirasaad/tripool/pkg/app"
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/webapi"
	log "github.com/charmbracelet/log"
)

// @title Tripool API
// @version 1.0.0
// @description Tripool API documentation: users, friendships, trips and their shared pots
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email fiber@swagger.io
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/MIT
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			slog.Error("failed to release dependencies", "error", err)
		}
	}()
	logger := deps.Logger

	// Create the application and warm the user directory
	app := app.New(deps, cfg)
	app.Warm(context.Background())

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(app)

	// Start the server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	return fiberApp.Listen(addr)
}
