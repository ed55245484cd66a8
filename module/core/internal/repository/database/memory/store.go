package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/database"
)

var _ database.StatusRepository = (*StatusRepo)(nil)

// StatusRepo keeps vehicle statuses in process memory. A single mutex guards
// the map, so a Swap is atomic for every vehicle, not just one key.
type StatusRepo struct {
	mu     sync.RWMutex
	status map[string]domain.VehicleStatus
}

func NewStatusRepo() *StatusRepo {
	return &StatusRepo{status: make(map[string]domain.VehicleStatus)}
}

func (r *StatusRepo) Swap(_ context.Context, status *domain.VehicleStatus) (*domain.VehicleStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var prev *domain.VehicleStatus
	if old, ok := r.status[status.VehicleID]; ok {
		prev = &old
	}
	r.status[status.VehicleID] = *status
	return prev, nil
}

func (r *StatusRepo) Get(_ context.Context, vehicleID string) (*domain.VehicleStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.status[vehicleID]
	if !ok {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleID, domain.ErrNotFound)
	}
	return &st, nil
}

func (r *StatusRepo) List(_ context.Context) ([]domain.VehicleStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]domain.VehicleStatus, 0, len(r.status))
	for _, st := range r.status {
		results = append(results, st)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].VehicleID < results[j].VehicleID })
	return results, nil
}
