// Package cache provides the Redis read-through cache for catalog reads.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const productKeyPrefix = "storefront:product:"

// Params defines the dependencies of the product cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed cache, or a pass-through cache when Redis is not configured.
func New(params Params) service.ProductCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, product cache disabled")

		return NewNoopProductCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable cache degrades to direct reads instead of blocking startup.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, product reads will hit the database",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisProductCache(client, cfg.TTL, params.Logger)
}

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group
}

// NewRedisProductCache builds a read-through cache on client.
func NewRedisProductCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.ProductCache {
	return &redisProductCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *redisProductCache) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// GetProduct serves from Redis when possible. Concurrent misses for the same id share one load.
func (c *redisProductCache) GetProduct(ctx context.Context, id uuid.UUID, load service.ProductLoader) (*entity.Product, error) {
	key := productKey(id)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var product entity.Product
		if jsonErr := json.Unmarshal(raw, &product); jsonErr == nil {
			return &product, nil
		}
		c.log(ctx).Warn("Discarding undecodable cached product", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.log(ctx).Warn("Product cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	// The shared load outlives the caller that started it, so a cancelled request
	// must not fail the other callers waiting on the same key.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(key, func() (any, error) {
		product, loadErr := load(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		c.store(loadCtx, key, product)

		return product, nil
	})
	if err != nil {
		return nil, err
	}

	product, ok := v.(*entity.Product)
	if !ok {
		return nil, errors.New("unexpected product cache value")
	}

	return product, nil
}

func (c *redisProductCache) store(ctx context.Context, key string, product *entity.Product) {
	payload, err := json.Marshal(product)
	if err != nil {
		c.log(ctx).Warn("Failed to encode product for cache", slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log(ctx).Warn("Product cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Invalidate drops the cached entry for id.
func (c *redisProductCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		return errors.Wrap(err, "invalidate product cache")
	}

	return nil
}

func productKey(id uuid.UUID) string {
	return productKeyPrefix + id.String()
}

type noopProductCache struct{}

// NewNoopProductCache returns a cache that always calls the loader.
func NewNoopProductCache() service.ProductCache {
	return noopProductCache{}
}

func (noopProductCache) GetProduct(ctx context.Context, _ uuid.UUID, load service.ProductLoader) (*entity.Product, error) {
	return load(ctx)
}

func (noopProductCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
