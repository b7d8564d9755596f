package config

import (
	"log/slog"

	"github.com/amirasaad/tripool/pkg/cache"
	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow       repository.UnitOfWork
	Directory *cache.Directory
	Clock     clock.Clock
	Logger    *slog.Logger
	Config    *App
	// Close releases the database and cache connections.
	Close func() error
}
