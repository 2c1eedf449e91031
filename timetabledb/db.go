package timetabledb

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"railmap.euroticket.org/internal/appconf"
)

// createDB creates a new SQLite database with the timetable tables
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	createTables(tx)

	// Create indexes for better performance
	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_stations_name ON stations(name);
		CREATE INDEX IF NOT EXISTS idx_trips_train_id ON trips(train_id);
		CREATE INDEX IF NOT EXISTS idx_route_stops_trip_id ON route_stops(trip_id);
		CREATE INDEX IF NOT EXISTS idx_route_stops_station_id ON route_stops(station_id);
		CREATE INDEX IF NOT EXISTS idx_track_segments_pair ON track_segments(departure, arrival);
		CREATE INDEX IF NOT EXISTS idx_trip_exceptions_trip_date ON trip_exceptions(trip_id, date);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		log.Fatalf("error creating indexes: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

func createTables(tx *sql.Tx) {
	createStationsTable(tx)
	createTrainsTable(tx)
	createTripsTable(tx)
	createTripExceptionsTable(tx)
	createRouteStopsTable(tx)
	createTrackSegmentsTable(tx)
}

// createTable creates a table in the database
func createTable(tx *sql.Tx, tableName string, createStmt string) {
	_, err := tx.Exec(createStmt)
	if err != nil {
		log.Fatalf("Error creating table %s: %v", tableName, err)
	}
}
