package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"cafe-backend/internal/domain"
)

// MenuCache keeps a JSON copy of single menus in Redis. Entries are dropped on
// every write to the menu, so a miss is always answered from Postgres.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func (c *MenuCache) MenuKey(id int) string {
	return "menu:" + strconv.Itoa(id)
}

func (c *MenuCache) GetMenu(ctx context.Context, id int) (*domain.Menu, bool) {
	payload, err := c.Client.Get(ctx, c.MenuKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var m domain.Menu
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, false
	}
	return &m, true
}

func (c *MenuCache) SetMenu(ctx context.Context, m *domain.Menu) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.MenuKey(m.ID), payload, c.TTL).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context, id int) error {
	return c.Client.Del(ctx, c.MenuKey(id)).Err()
}
