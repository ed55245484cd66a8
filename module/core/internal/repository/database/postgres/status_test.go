package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

const statusColumnsQuery = `SELECT vehicle_id, zone_id, state, latitude, longitude, last_seen FROM vehicle_status`

func statusRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"vehicle_id", "zone_id", "state", "latitude", "longitude", "last_seen"})
}

func TestSwap_FirstObservation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectBegin()
	mock.ExpectQuery(statusColumnsQuery + ` WHERE vehicle_id = (.+) FOR UPDATE`).
		WithArgs("B1234XYZ").
		WillReturnRows(statusRow())
	mock.ExpectExec(`INSERT INTO vehicle_status`).
		WithArgs("B1234XYZ", "palace", "inside", 51.5014, -0.1419, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewStatusRepo(db)
	prev, err := repo.Swap(context.Background(), &domain.VehicleStatus{
		VehicleID:     "B1234XYZ",
		CurrentZoneID: "palace",
		State:         domain.StateInside,
		Location:      domain.Coordinate{Lat: 51.5014, Lng: -0.1419},
		LastSeen:      ts,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != nil {
		t.Errorf("expected nil previous status, got %+v", prev)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSwap_ReturnsPrevious(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	old := time.Unix(1715000000, 0)
	ts := time.Unix(1715003456, 0)
	mock.ExpectBegin()
	mock.ExpectQuery(statusColumnsQuery+` WHERE vehicle_id = (.+) FOR UPDATE`).
		WithArgs("B1234XYZ").
		WillReturnRows(statusRow().AddRow("B1234XYZ", "palace", "inside", 51.5014, -0.1419, old))
	mock.ExpectExec(`INSERT INTO vehicle_status`).
		WithArgs("B1234XYZ", "", "outside", 51.52, -0.15, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewStatusRepo(db)
	prev, err := repo.Swap(context.Background(), &domain.VehicleStatus{
		VehicleID: "B1234XYZ",
		State:     domain.StateOutside,
		Location:  domain.Coordinate{Lat: 51.52, Lng: -0.15},
		LastSeen:  ts,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev == nil {
		t.Fatal("expected a previous status")
	}
	if prev.CurrentZoneID != "palace" || prev.State != domain.StateInside {
		t.Errorf("unexpected previous status %+v", prev)
	}
	if !prev.LastSeen.Equal(old) {
		t.Errorf("expected last seen %v, got %v", old, prev.LastSeen)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSwap_UpsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectQuery(statusColumnsQuery + ` WHERE vehicle_id = (.+) FOR UPDATE`).
		WithArgs("B1234XYZ").
		WillReturnRows(statusRow())
	mock.ExpectExec(`INSERT INTO vehicle_status`).
		WillReturnError(sqlmock.ErrCancelled)
	mock.ExpectRollback()

	repo := NewStatusRepo(db)
	_, err = repo.Swap(context.Background(), &domain.VehicleStatus{
		VehicleID: "B1234XYZ",
		State:     domain.StateOutside,
		LastSeen:  time.Unix(1715003456, 0),
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGet_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	mock.ExpectQuery(statusColumnsQuery+` WHERE vehicle_id = (.+)`).
		WithArgs("B1234XYZ").
		WillReturnRows(statusRow().AddRow("B1234XYZ", "palace", "inside", 51.5014, -0.1419, ts))

	repo := NewStatusRepo(db)
	st, err := repo.Get(context.Background(), "B1234XYZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.CurrentZoneID != "palace" {
		t.Errorf("expected palace, got %s", st.CurrentZoneID)
	}
	if st.State != domain.StateInside {
		t.Errorf("expected inside, got %s", st.State)
	}
	if !st.LastSeen.Equal(ts) {
		t.Errorf("expected %v, got %v", ts, st.LastSeen)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGet_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(statusColumnsQuery + ` WHERE vehicle_id = (.+)`).
		WithArgs("UNKNOWN").
		WillReturnRows(statusRow())

	repo := NewStatusRepo(db)
	_, err = repo.Get(context.Background(), "UNKNOWN")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1715003456, 0)
	rows := statusRow().
		AddRow("B1234XYZ", "palace", "inside", 51.5014, -0.1419, ts).
		AddRow("B5678ABC", "", "outside", 51.52, -0.15, ts)

	mock.ExpectQuery(statusColumnsQuery + ` ORDER BY vehicle_id`).
		WillReturnRows(rows)

	repo := NewStatusRepo(db)
	results, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(results))
	}
	if results[0].VehicleID != "B1234XYZ" || results[0].State != domain.StateInside {
		t.Errorf("unexpected first status %+v", results[0])
	}
	if results[1].CurrentZoneID != "" || results[1].State != domain.StateOutside {
		t.Errorf("unexpected second status %+v", results[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestList_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(statusColumnsQuery + ` ORDER BY vehicle_id`).
		WillReturnRows(statusRow())

	repo := NewStatusRepo(db)
	results, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 statuses, got %d", len(results))
	}
}
