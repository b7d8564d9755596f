package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	infracache "github.com/amirasaad/tripool/infra/cache"
	"github.com/amirasaad/tripool/infra/database"
	infrarepo "github.com/amirasaad/tripool/infra/repository"
	"github.com/amirasaad/tripool/pkg/app"
	"github.com/amirasaad/tripool/pkg/cache"
	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/utils"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	utils.PasswordCost = bcrypt.MinCost
	color.NoColor = true

	cfg := &config.App{
		Env:   "test",
		DB:    &config.DB{Url: "sqlite://" + filepath.Join(t.TempDir(), "cli.db")},
		Auth:  &config.Auth{Jwt: &config.Jwt{}},
		Cache: &config.Cache{TTL: time.Minute},
	}
	db, err := database.NewDBConnection(cfg.DB, cfg.Env, clock.Real{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	store := infracache.NewMemoryCache(clock.Real{})
	t.Cleanup(store.Close)
	return app.New(&config.Deps{
		Uow:       infrarepo.NewUoW(db),
		Directory: cache.NewDirectory(store, cfg.Cache.TTL, clock.Real{}),
		Clock:     clock.Real{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:    cfg,
	}, cfg)
}

func exec(t *testing.T, a *app.App, input string, argv ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := newCLI(a, strings.NewReader(input), &out)
	err := c.exec(context.Background(), commands[argv[0]], argv[1:])
	return out.String(), err
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("12.5")
	require.NoError(t, err)
	assert.InEpsilon(t, 12.5, amount, 1e-9)

	for _, bad := range []string{"0", "-1", "ten"} {
		_, err := parseAmount(bad)
		assert.Error(t, err, bad)
	}
}

func TestUsageListsEveryCommand(t *testing.T) {
	var out bytes.Buffer
	usage(&out)
	for _, cmd := range commands {
		assert.Contains(t, out.String(), cmd.usage)
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, 2, run([]string{"teleport"}))
	assert.Equal(t, 2, run([]string{"credit", "1"}))
}

func TestTripFlow(t *testing.T) {
	t.Setenv(passwordEnv, "password123")
	a := newTestApp(t)

	out, err := exec(t, a, "", "signup", "alice", "alice@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "User created")

	out, err = exec(t, a, "alice@example.com\n", "create", "Lisbon", "300", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as alice")
	assert.Contains(t, out, "Trip created: ID=1, Pot=1")

	out, err = exec(t, a, "alice\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Trips=1")

	out, err = exec(t, a, "alice\n", "credit", "1", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Pot #1 now holds 100.00")

	out, err = exec(t, a, "", "pot", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Collected: 100.00 / 300.00")
	assert.Contains(t, out, "(paid)")

	out, err = exec(t, a, "", "trips")
	require.NoError(t, err)
	assert.Contains(t, out, "Lisbon")

	out, err = exec(t, a, "", "trip", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Seats: 1/3")
}

func TestLoginFailure(t *testing.T) {
	t.Setenv(passwordEnv, "wrong-password")
	a := newTestApp(t)

	_, err := exec(t, a, "ghost\n", "friends")
	require.Error(t, err)
}
