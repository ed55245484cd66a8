package database

import (
	"context"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

// StatusRepository persists the latest known status per vehicle.
//
// Swap stores the given status and returns the status it replaced, or nil
// when the vehicle had none. Implementations must make the read-and-replace
// atomic with respect to concurrent swaps for the same vehicle.
type StatusRepository interface {
	Swap(ctx context.Context, status *domain.VehicleStatus) (*domain.VehicleStatus, error)
	Get(ctx context.Context, vehicleID string) (*domain.VehicleStatus, error)
	List(ctx context.Context) ([]domain.VehicleStatus, error)
}
