// Package cache holds the process-scoped user directory used to answer user
// info lookups without hitting the database.
package cache

import (
	"context"
	"time"

	"github.com/amirasaad/tripool/pkg/domain"
)

// UserCache defines the store behind the user directory.
type UserCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, key string) (*domain.User, error)
	Set(ctx context.Context, key string, u *domain.User, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear removes every entry and the last update mark.
	Clear(ctx context.Context) error
	GetLastUpdate(ctx context.Context) (time.Time, error)
	SetLastUpdate(ctx context.Context, t time.Time) error
}
