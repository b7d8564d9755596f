package cache

import (
	"context"
	"time"

	"github.com/amirasaad/tripool/pkg/clock"
	"github.com/amirasaad/tripool/pkg/domain"
)

// Directory caches users by pseudo. It is created once per process and
// handed to the services that need it.
type Directory struct {
	store UserCache
	ttl   time.Duration
	clock clock.Clock
}

// NewDirectory creates a Directory over store. Entries expire after ttl.
func NewDirectory(store UserCache, ttl time.Duration, clk clock.Clock) *Directory {
	return &Directory{store: store, ttl: ttl, clock: clk}
}

// Lookup returns the cached user called pseudo, or nil on a miss.
func (d *Directory) Lookup(ctx context.Context, pseudo string) (*domain.User, error) {
	return d.store.Get(ctx, pseudo)
}

// Put caches u under its pseudo. The password is never cached.
func (d *Directory) Put(ctx context.Context, u *domain.User) error {
	cp := *u
	cp.Password = ""
	return d.store.Set(ctx, u.Pseudo, &cp, d.ttl)
}

// Forget drops the entry of pseudo.
func (d *Directory) Forget(ctx context.Context, pseudo string) error {
	return d.store.Delete(ctx, pseudo)
}

// Refresh replaces the cached users with users and marks the directory
// refreshed.
func (d *Directory) Refresh(ctx context.Context, users []*domain.User) error {
	if err := d.store.Clear(ctx); err != nil {
		return err
	}
	for _, u := range users {
		if err := d.Put(ctx, u); err != nil {
			return err
		}
	}
	return d.store.SetLastUpdate(ctx, d.clock.Now())
}

// Clear empties the directory.
func (d *Directory) Clear(ctx context.Context) error {
	return d.store.Clear(ctx)
}

// Refreshed reports whether Refresh ran since the last Clear.
func (d *Directory) Refreshed(ctx context.Context) bool {
	ts, err := d.store.GetLastUpdate(ctx)
	return err == nil && !ts.IsZero()
}
