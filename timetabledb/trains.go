package timetabledb

import (
	"database/sql"
	"fmt"
)

// Train is a rolling-stock identity reused across many scheduled trips.
type Train struct {
	ID               int64
	Number           string
	Name             string
	HasWifi          bool
	HasAirCon        bool
	HasRestaurant    bool
	HasBicycleHolder bool
	IsAccessible     bool
}

// InsertTrains adds new trains to the database
func InsertTrains(db *sql.DB, trains []Train) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO trains (
			id, number, name, has_wifi, has_air_con,
			has_restaurant, has_bicycle_holder, is_accessible
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, train := range trains {
		_, err := stmt.Exec(
			train.ID, train.Number, train.Name, train.HasWifi, train.HasAirCon,
			train.HasRestaurant, train.HasBicycleHolder, train.IsAccessible,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting train: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createTrainsTable(tx *sql.Tx) {
	createTable(tx, "trains", `
		CREATE TABLE IF NOT EXISTS trains (
			id INTEGER PRIMARY KEY,
			number TEXT NOT NULL,
			name TEXT,
			has_wifi INTEGER DEFAULT 0,
			has_air_con INTEGER DEFAULT 0,
			has_restaurant INTEGER DEFAULT 0,
			has_bicycle_holder INTEGER DEFAULT 0,
			is_accessible INTEGER DEFAULT 0
		);`,
	)
}
