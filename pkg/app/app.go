package app

import (
	"context"

	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/service/auth"
	"github.com/amirasaad/tripool/pkg/service/friendship"
	"github.com/amirasaad/tripool/pkg/service/pot"
	"github.com/amirasaad/tripool/pkg/service/trip"
	"github.com/amirasaad/tripool/pkg/service/user"
)

type App struct {
	Deps              *config.Deps
	Config            *config.App
	AuthService       *auth.Service
	UserService       *user.Service
	FriendshipService *friendship.Service
	TripService       *trip.Service
	PotService        *pot.Service
}

// New wires the services over deps. When cfg carries a JWT secret the auth
// service issues tokens, otherwise it falls back to password checks only.
func New(deps *config.Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.UserService = user.New(deps.Uow, deps.Directory, deps.Clock, deps.Logger)
	app.FriendshipService = friendship.New(deps.Uow, deps.Clock, deps.Logger)
	app.TripService = trip.New(deps.Uow, deps.Logger)
	app.PotService = pot.New(deps.Uow, deps.Clock, deps.Logger)

	if cfg != nil && cfg.Auth != nil && cfg.Auth.Jwt != nil && cfg.Auth.Jwt.Secret != "" {
		app.AuthService = auth.NewWithJWT(app.UserService, cfg.Auth.Jwt, deps.Clock, deps.Logger)
	} else {
		app.AuthService = auth.NewWithBasic(app.UserService, deps.Logger)
	}
	return app
}

// Warm loads every user into the directory. A failure leaves the directory
// empty; lookups then fall through to the database.
func (a *App) Warm(ctx context.Context) {
	if err := a.UserService.RefreshCache(ctx); err != nil {
		a.Deps.Logger.Warn("User cache warm-up failed", "error", err)
		return
	}
	a.Deps.Logger.Info("User cache warmed up")
}
