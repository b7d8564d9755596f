// Package database opens the gorm connection and keeps the schema current.
package database

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqlitePrefix = "sqlite://"

// NewDBConnection opens the database named by cnf.Url. A "sqlite://" URL
// opens a local sqlite file; anything else is handed to the postgres driver.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
	clk clock.Clock,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	gormCfg := &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc:                clk.Now,
	}

	if IsSQLite(cnf.Url) {
		connection, err := gorm.Open(sqlite.Open(strings.TrimPrefix(cnf.Url, sqlitePrefix)), gormCfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := connection.DB()
		if err != nil {
			return nil, err
		}
		// sqlite serialises writers.
		sqlDB.SetMaxOpenConns(1)
		return connection, nil
	}

	connection, err := gorm.Open(postgres.Open(cnf.Url), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// IsSQLite reports whether url selects the sqlite driver.
func IsSQLite(url string) bool {
	return strings.HasPrefix(url, sqlitePrefix)
}
