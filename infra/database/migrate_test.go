package database

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/tripool/infra/repository"
	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/config"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgresContainer starts a Postgres container using Testcontainers
func startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("tripool"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

func TestMigrate_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()
	container, err := startPostgresContainer(ctx)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewDBConnection(&config.DB{Url: dsn}, "test", clock.Real{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	users := repository.NewUserRepository(db)
	u := &domain.User{Pseudo: "alice", Mail: "alice@example.com", Password: "hash", Role: domain.RoleUser, UserType: domain.UserTypeStandard}
	require.NoError(t, users.Save(ctx, u))
	assert.Equal(t, int64(1), u.ID)

	dup := &domain.User{Pseudo: "alice", Mail: "other@example.com", Password: "hash", Role: domain.RoleUser, UserType: domain.UserTypeStandard}
	assert.ErrorIs(t, users.Save(ctx, dup), domain.ErrAlreadyExists)
}
