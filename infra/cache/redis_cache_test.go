package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedisCache starts a Redis container and returns a cache bound to it.
func setupRedisCache(tb testing.TB) *RedisUserCache {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0.5",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		tb.Skipf("redis container unavailable: %v", err)
	}
	tb.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(tb, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(tb, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewRedisUserCache("redis://"+host+":"+port.Port(), "tripool:test:", logger)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisUserCache(t *testing.T) {
	c := setupRedisCache(t)
	ctx := context.Background()

	got, err := c.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, "alice", &domain.User{ID: 1, Pseudo: "alice", Password: "secret"}, time.Minute))
	require.NoError(t, c.Set(ctx, "bob", &domain.User{ID: 2, Pseudo: "bob"}, time.Minute))
	got, err = c.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
	assert.Empty(t, got.Password)

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, c.SetLastUpdate(ctx, now))
	ts, err := c.GetLastUpdate(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(ts))

	require.NoError(t, c.Delete(ctx, "bob"))
	got, err = c.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Clear(ctx))
	got, err = c.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)
	ts, err = c.GetLastUpdate(ctx)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
}
