package tests

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"cafe-backend/internal/domain"
	"cafe-backend/internal/storage"
)

func setupMenuCache(t *testing.T) *storage.MenuCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewMenuCache(client, time.Minute)
}

func TestMenuCacheRoundTrip(t *testing.T) {
	cache := setupMenuCache(t)
	ctx := context.Background()

	_, ok := cache.GetMenu(ctx, 1)
	assert.False(t, ok)

	menu := &domain.Menu{ID: 1, Name: "아메리카노", CategoryID: 1, Price: 4500, IsAvailable: true}
	assert.NoError(t, cache.SetMenu(ctx, menu))

	got, ok := cache.GetMenu(ctx, 1)
	assert.True(t, ok)
	assert.Equal(t, menu.Name, got.Name)
	assert.Equal(t, menu.Price, got.Price)
}

func TestMenuCacheInvalidate(t *testing.T) {
	cache := setupMenuCache(t)
	ctx := context.Background()

	menu := &domain.Menu{ID: 2, Name: "카페라떼", Price: 5000}
	assert.NoError(t, cache.SetMenu(ctx, menu))
	assert.NoError(t, cache.Invalidate(ctx, 2))

	_, ok := cache.GetMenu(ctx, 2)
	assert.False(t, ok)
}
