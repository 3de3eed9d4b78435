// Package cache keeps rendered advertisement views in Redis.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"market/config"
	"market/internal/domain/lifecycle"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	viewCacheKeyPrefix = "market:view:"

	// Version keys must outlive any in-flight read.
	versionTTL = 24 * time.Hour
)

// setIfVersionScript writes KEYS[2] only while KEYS[1] still holds ARGV[1].
// A missing version key reads as 0.
var setIfVersionScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current ~= tonumber(ARGV[1]) then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewViewCache returns a Redis-backed cache, or a no-op cache when redis.url is empty.
func NewViewCache(params Params) (service.ViewCache, error) {
	cfg := params.Config.Redis
	if strings.TrimSpace(cfg.URL) == "" {
		params.Logger.Info("Redis not configured, view cache disabled")

		return NewNoopViewCache(), nil
	}

	client, err := newRedisClient(cfg.URL)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisViewCache(client, cfg.TTL), nil
}

func newRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis URL")
	}

	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolTimeout = 4 * time.Second

	return redis.NewClient(opts), nil
}

// redisViewCache stores serialized views as plain string values with a TTL,
// next to a counter that Delete increments. Both keys share a hash tag so the
// script touches one cluster slot.
type redisViewCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisViewCache creates a view cache on client.
func NewRedisViewCache(client redis.Cmdable, ttl time.Duration) service.ViewCache {
	return &redisViewCache{client: client, ttl: ttl}
}

func valueKey(key string) string {
	return viewCacheKeyPrefix + "{" + key + "}"
}

func versionKey(key string) string {
	return valueKey(key) + ":version"
}

func (c *redisViewCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, valueKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "cache get")
	}

	return value, true, nil
}

func (c *redisViewCache) Version(ctx context.Context, key string) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "cache version")
	}

	return version, nil
}

func (c *redisViewCache) SetIfVersion(ctx context.Context, key string, version int64, value []byte) (bool, error) {
	stored, err := setIfVersionScript.Run(ctx, c.client,
		[]string{versionKey(key), valueKey(key)},
		version, value, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, errors.Wrap(err, "cache set")
	}

	return stored == 1, nil
}

func (c *redisViewCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			pipe.Del(ctx, valueKey(key))
			pipe.Incr(ctx, versionKey(key))
			pipe.Expire(ctx, versionKey(key), versionTTL)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "cache delete")
	}

	return nil
}

type noopViewCache struct{}

// NewNoopViewCache returns a cache that never holds anything.
func NewNoopViewCache() service.ViewCache {
	return noopViewCache{}
}

func (noopViewCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (noopViewCache) Version(context.Context, string) (int64, error)    { return 0, nil }
func (noopViewCache) Delete(context.Context, ...string) error           { return nil }

func (noopViewCache) SetIfVersion(context.Context, string, int64, []byte) (bool, error) {
	return false, nil
}
