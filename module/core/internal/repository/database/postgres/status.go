package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/database"
)

var _ database.StatusRepository = (*StatusRepo)(nil)

// StatusRepo stores one row per vehicle in the vehicle_status table. Swap
// locks the row with SELECT ... FOR UPDATE so concurrent swaps for the same
// vehicle serialize instead of interleaving.
type StatusRepo struct {
	db *sql.DB
}

func NewStatusRepo(db *sql.DB) *StatusRepo {
	return &StatusRepo{db: db}
}

func (r *StatusRepo) Swap(ctx context.Context, status *domain.VehicleStatus) (*domain.VehicleStatus, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin swap: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		`SELECT vehicle_id, zone_id, state, latitude, longitude, last_seen FROM vehicle_status WHERE vehicle_id = $1 FOR UPDATE`,
		status.VehicleID,
	)
	prev := &domain.VehicleStatus{}
	err = row.Scan(&prev.VehicleID, &prev.CurrentZoneID, &prev.State, &prev.Location.Lat, &prev.Location.Lng, &prev.LastSeen)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		prev = nil
	case err != nil:
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO vehicle_status (vehicle_id, zone_id, state, latitude, longitude, last_seen)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (vehicle_id) DO UPDATE SET zone_id = $2, state = $3, latitude = $4, longitude = $5, last_seen = $6`,
		status.VehicleID, status.CurrentZoneID, string(status.State),
		status.Location.Lat, status.Location.Lng, status.LastSeen,
	)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit swap: %w", err)
	}
	return prev, nil
}

func (r *StatusRepo) Get(ctx context.Context, vehicleID string) (*domain.VehicleStatus, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT vehicle_id, zone_id, state, latitude, longitude, last_seen FROM vehicle_status WHERE vehicle_id = $1`,
		vehicleID,
	)

	var st domain.VehicleStatus
	err := row.Scan(&st.VehicleID, &st.CurrentZoneID, &st.State, &st.Location.Lat, &st.Location.Lng, &st.LastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *StatusRepo) List(ctx context.Context) ([]domain.VehicleStatus, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT vehicle_id, zone_id, state, latitude, longitude, last_seen FROM vehicle_status ORDER BY vehicle_id`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.VehicleStatus
	for rows.Next() {
		var st domain.VehicleStatus
		if err := rows.Scan(&st.VehicleID, &st.CurrentZoneID, &st.State, &st.Location.Lat, &st.Location.Lng, &st.LastSeen); err != nil {
			return nil, err
		}
		results = append(results, st)
	}
	return results, rows.Err()
}
