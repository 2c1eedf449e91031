package timetabledb

import (
	"context"
	"database/sql"
	"fmt"
)

// Trip is one scheduled run of a train. DaysMask is a 7-bit weekly
// recurrence mask with Monday at bit 0.
type Trip struct {
	ID       int64
	TrainID  int64
	DaysMask int
}

// TripException overrides the weekly mask for one calendar date.
// Runs=true adds a run the mask would skip, Runs=false cancels one.
type TripException struct {
	ID     int64
	TripID int64
	Date   string // YYYY-MM-DD
	Runs   bool
}

// TripBetweenRow is one trip that visits the departure station strictly
// before the arrival station, joined with its train attributes and the
// two matched stop orders.
type TripBetweenRow struct {
	TripID           int64
	DaysMask         int
	TrainNumber      string
	TrainName        string
	HasWifi          bool
	HasAirCon        bool
	HasRestaurant    bool
	HasBicycleHolder bool
	IsAccessible     bool
	DepOrder         int
	ArrOrder         int
}

// InsertTrips adds new trips to the database
func InsertTrips(db *sql.DB, trips []Trip) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO trips (id, train_id, days_mask) VALUES (?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, trip := range trips {
		_, err := stmt.Exec(trip.ID, trip.TrainID, trip.DaysMask)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertTripExceptions adds calendar exceptions to the database
func InsertTripExceptions(db *sql.DB, exceptions []TripException) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO trip_exceptions (id, trip_id, date, runs) VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, ex := range exceptions {
		_, err := stmt.Exec(ex.ID, ex.TripID, ex.Date, ex.Runs)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting trip exception: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createTripsTable(tx *sql.Tx) {
	createTable(tx, "trips", `
		CREATE TABLE IF NOT EXISTS trips (
			id INTEGER PRIMARY KEY,
			train_id INTEGER,
			days_mask INTEGER DEFAULT 127,
			FOREIGN KEY (train_id) REFERENCES trains(id)
		);`,
	)
}

func createTripExceptionsTable(tx *sql.Tx) {
	createTable(tx, "trip_exceptions", `
		CREATE TABLE IF NOT EXISTS trip_exceptions (
			id INTEGER PRIMARY KEY,
			trip_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			runs INTEGER NOT NULL,
			FOREIGN KEY (trip_id) REFERENCES trips(id)
		);`,
	)
}

// ListTripsBetween returns every trip that stops at both stations with
// the departure strictly before the arrival in stop order. Weekday
// filtering happens in the caller; the mask travels with each row.
func (q *Queries) ListTripsBetween(ctx context.Context, depStationID, arrStationID int64) ([]TripBetweenRow, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT t.id, t.days_mask, tr.number, COALESCE(tr.name, ''),
		       tr.has_wifi, tr.has_air_con, tr.has_restaurant, tr.has_bicycle_holder, tr.is_accessible,
		       rs_dep.stop_order, rs_arr.stop_order
		FROM trips t
		JOIN trains tr ON t.train_id = tr.id
		JOIN route_stops rs_dep ON t.id = rs_dep.trip_id AND rs_dep.station_id = ?
		JOIN route_stops rs_arr ON t.id = rs_arr.trip_id AND rs_arr.station_id = ?
		WHERE rs_dep.stop_order < rs_arr.stop_order
		ORDER BY t.id;
	`, depStationID, arrStationID)
	if err != nil {
		return nil, fmt.Errorf("error listing trips between stations: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var trips []TripBetweenRow
	for rows.Next() {
		var t TripBetweenRow
		if err := rows.Scan(
			&t.TripID, &t.DaysMask, &t.TrainNumber, &t.TrainName,
			&t.HasWifi, &t.HasAirCon, &t.HasRestaurant, &t.HasBicycleHolder, &t.IsAccessible,
			&t.DepOrder, &t.ArrOrder,
		); err != nil {
			return nil, fmt.Errorf("error scanning trip: %w", err)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// GetTripException returns the calendar exception for a trip on one
// date, or sql.ErrNoRows when none is recorded.
func (q *Queries) GetTripException(ctx context.Context, tripID int64, date string) (TripException, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, trip_id, date, runs
		FROM trip_exceptions WHERE trip_id = ? AND date = ?;
	`, tripID, date)

	var ex TripException
	err := row.Scan(&ex.ID, &ex.TripID, &ex.Date, &ex.Runs)
	return ex, err
}
