package timetabledb

import (
	"context"
	"database/sql"
	"fmt"
)

// Station is a railway station. Latitude, longitude and the platform
// count are optional; a station without coordinates is excluded from
// map placement but is still valid for timetable lookups.
type Station struct {
	ID        int64
	Name      string
	Platforms sql.NullInt64
	Lat       sql.NullFloat64
	Lon       sql.NullFloat64
}

// InsertStations adds new stations to the database
func InsertStations(db *sql.DB, stations []Station) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stations (
			id, name, platforms, latitude, longitude
		) VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, station := range stations {
		_, err := stmt.Exec(
			station.ID, station.Name, station.Platforms, station.Lat, station.Lon,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting station: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createStationsTable(tx *sql.Tx) {
	createTable(tx, "stations", `
		CREATE TABLE IF NOT EXISTS stations (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			platforms INTEGER,
			latitude REAL,
			longitude REAL
		);`,
	)
}

// GetStationByName looks a station up by its unique name. Returns
// sql.ErrNoRows when the name is unknown.
func (q *Queries) GetStationByName(ctx context.Context, name string) (Station, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, name, platforms, latitude, longitude
		FROM stations WHERE name = ?;
	`, name)

	var s Station
	err := row.Scan(&s.ID, &s.Name, &s.Platforms, &s.Lat, &s.Lon)
	return s, err
}

// GetStationByID fetches a single station by primary key.
func (q *Queries) GetStationByID(ctx context.Context, id int64) (Station, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT id, name, platforms, latitude, longitude
		FROM stations WHERE id = ?;
	`, id)

	var s Station
	err := row.Scan(&s.ID, &s.Name, &s.Platforms, &s.Lat, &s.Lon)
	return s, err
}

// ListStationsWithCoordinates returns every station that can be placed
// on a map.
func (q *Queries) ListStationsWithCoordinates(ctx context.Context) ([]Station, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, platforms, latitude, longitude
		FROM stations
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY name;
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing stations: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var stations []Station
	for rows.Next() {
		var s Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Platforms, &s.Lat, &s.Lon); err != nil {
			return nil, fmt.Errorf("error scanning station: %w", err)
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}
