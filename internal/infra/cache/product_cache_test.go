package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopProductCache_AlwaysLoads(t *testing.T) {
	cache := NewNoopProductCache()
	want := &entity.Product{ID: uuid.New(), SKU: "TOP-001"}

	calls := 0
	load := func(context.Context) (*entity.Product, error) {
		calls++

		return want, nil
	}

	for range 2 {
		got, err := cache.GetProduct(context.Background(), want.ID, load)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 2, calls)
	assert.NoError(t, cache.Invalidate(context.Background(), want.ID))
}

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisProductCache_FallsBackToLoaderWhenRedisIsDown(t *testing.T) {
	cache := NewRedisProductCache(unreachableClient(t), time.Minute, slog.Default())
	want := &entity.Product{ID: uuid.New(), Name: "반팔 티셔츠"}

	got, err := cache.GetProduct(context.Background(), want.ID, func(context.Context) (*entity.Product, error) {
		return want, nil
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Error(t, cache.Invalidate(context.Background(), want.ID))
}

func TestRedisProductCache_PropagatesLoaderError(t *testing.T) {
	cache := NewRedisProductCache(unreachableClient(t), time.Minute, slog.Default())
	loadErr := errors.New("product not found")

	_, err := cache.GetProduct(context.Background(), uuid.New(), func(context.Context) (*entity.Product, error) {
		return nil, loadErr
	})

	assert.ErrorIs(t, err, loadErr)
}

func TestRedisProductCache_LoadIgnoresCallerCancellation(t *testing.T) {
	cache := NewRedisProductCache(unreachableClient(t), time.Minute, slog.Default())
	want := &entity.Product{ID: uuid.New(), Name: "반팔 티셔츠"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := cache.GetProduct(ctx, want.ID, func(loadCtx context.Context) (*entity.Product, error) {
		if err := loadCtx.Err(); err != nil {
			return nil, err
		}

		return want, nil
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProductKey(t *testing.T) {
	id := uuid.MustParse("0194d1f0-0000-7000-8000-000000000001")

	assert.Equal(t, "storefront:product:0194d1f0-0000-7000-8000-000000000001", productKey(id))
}
