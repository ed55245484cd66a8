package cache

import (
	"context"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

// RouteCache remembers computed route plans by request key. A miss is
// reported through the bool, not an error.
type RouteCache interface {
	GetPlan(ctx context.Context, key string) (*domain.RoutePlan, bool, error)
	SetPlan(ctx context.Context, key string, plan *domain.RoutePlan) error
}
