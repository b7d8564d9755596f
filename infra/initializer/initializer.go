package initializer

import (
	"fmt"
	"log/slog"
	"os"

	infracache "github.com/amirasaad/tripool/infra/cache"
	"github.com/amirasaad/tripool/infra/database"
	infrarepository "github.com/amirasaad/tripool/infra/repository"
	"github.com/amirasaad/tripool/pkg/cache"
	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/config"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	return initialize(cfg, setupLogger(cfg.Log, os.Stdout))
}

func initialize(cfg *config.App, logger *slog.Logger) (*config.Deps, error) {
	deps := &config.Deps{
		Clock:  clock.Real{},
		Logger: logger,
		Config: cfg,
	}

	db, err := database.NewDBConnection(cfg.DB, cfg.Env, deps.Clock)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("Database schema is up to date")
	}
	deps.Uow = infrarepository.NewUoW(db)

	var store cache.UserCache
	var closeStore func() error
	if cfg.Redis.URL != "" {
		redisStore, err := infracache.NewRedisUserCache(cfg.Redis.URL, cfg.Redis.KeyPrefix, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis user cache: %w", err)
		}
		store, closeStore = redisStore, redisStore.Close
		logger.Info("Using Redis user cache")
	} else {
		memStore := infracache.NewMemoryCache(deps.Clock)
		store = memStore
		closeStore = func() error {
			memStore.Close()
			return nil
		}
		logger.Info("Using in-memory user cache")
	}
	deps.Directory = cache.NewDirectory(store, cfg.Cache.TTL, deps.Clock)

	deps.Close = func() error {
		storeErr := closeStore()
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			return err
		}
		return storeErr
	}
	return deps, nil
}
