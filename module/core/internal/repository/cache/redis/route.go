package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/cache"
)

var _ cache.RouteCache = (*RouteCache)(nil)

const keyPrefix = "geofence:route:"

type RouteCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewRouteCache(client *goredis.Client, ttl time.Duration) *RouteCache {
	return &RouteCache{client: client, ttl: ttl}
}

func (c *RouteCache) GetPlan(ctx context.Context, key string) (*domain.RoutePlan, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var plan domain.RoutePlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached plan: %w", err)
	}
	return &plan, true, nil
}

func (c *RouteCache) SetPlan(ctx context.Context, key string, plan *domain.RoutePlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
