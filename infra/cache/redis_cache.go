package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"log/slog"

	"github.com/amirasaad/tripool/pkg/cache"
	"github.com/amirasaad/tripool/pkg/domain"
	"github.com/redis/go-redis/v9"
)

const lastUpdateKey = "last_update"

// RedisUserCache implements cache.UserCache using Redis.
type RedisUserCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisUserCache creates a new RedisUserCache from a redis URL such as
// redis://localhost:6379/0.
func NewRedisUserCache(url, prefix string, logger *slog.Logger) (*RedisUserCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisUserCacheWithOptions(opt, prefix, logger), nil
}

// NewRedisUserCacheWithOptions creates a new RedisUserCache from
// redis.Options.
func NewRedisUserCacheWithOptions(
	opt *redis.Options,
	prefix string,
	logger *slog.Logger,
) *RedisUserCache {
	client := redis.NewClient(opt)
	return &RedisUserCache{client: client, prefix: prefix, logger: logger}
}

func (r *RedisUserCache) key(key string) string {
	return r.prefix + "user:" + key
}

func (r *RedisUserCache) Get(ctx context.Context, key string) (*domain.User, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return nil, nil // cache miss
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal([]byte(val), &u); err != nil {
		r.logger.Error("Redis cache unmarshal error", "key", key, "error", err)
		return nil, err
	}
	r.logger.Debug("Redis cache hit", "key", key)
	return &u, nil
}

func (r *RedisUserCache) Set(
	ctx context.Context,
	key string,
	u *domain.User,
	ttl time.Duration,
) error {
	data, err := json.Marshal(u)
	if err != nil {
		r.logger.Error("Redis cache marshal error", "key", key, "error", err)
		return err
	}
	err = r.client.Set(ctx, r.key(key), data, ttl).Err()
	if err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "key", key, "ttl", ttl)
	return nil
}

func (r *RedisUserCache) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.key(key)).Err()
	if err != nil {
		r.logger.Error("Redis cache delete error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis cache delete", "key", key)
	return nil
}

// Clear removes every key under the prefix.
func (r *RedisUserCache) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("Redis cache scan error", "error", err)
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Redis cache clear error", "error", err)
		return err
	}
	r.logger.Debug("Redis cache cleared", "keys", len(keys))
	return nil
}

func (r *RedisUserCache) GetLastUpdate(ctx context.Context) (time.Time, error) {
	val, err := r.client.Get(ctx, r.prefix+lastUpdateKey).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil // not set
	}
	if err != nil {
		r.logger.Error("Redis cache get last update error", "error", err)
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		r.logger.Error("Redis cache parse last update error", "error", err)
		return time.Time{}, err
	}
	return ts, nil
}

func (r *RedisUserCache) SetLastUpdate(ctx context.Context, t time.Time) error {
	err := r.client.Set(ctx, r.prefix+lastUpdateKey, t.Format(time.RFC3339Nano), 0).Err()
	if err != nil {
		r.logger.Error("Redis cache set last update error", "error", err)
		return err
	}
	r.logger.Debug("Redis cache set last update", "timestamp", t)
	return nil
}

// Close releases the client connections.
func (r *RedisUserCache) Close() error {
	return r.client.Close()
}

var _ cache.UserCache = (*RedisUserCache)(nil)
