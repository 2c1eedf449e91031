package timetabledb

import (
	"context"
	"database/sql"
	"fmt"
)

// RouteStop is one stop of a trip at a station. Arrival and departure
// are seconds since midnight; the first stop of a trip has no arrival
// and the last has no departure. StopOrder is 1-based and is the sole
// ordering key along a trip.
type RouteStop struct {
	ID        int64
	TripID    int64
	StationID int64
	Arrival   sql.NullInt64
	Departure sql.NullInt64
	StopOrder int
}

// TripStopRow is a route stop joined with its station, as consumed by
// the segment resolver.
type TripStopRow struct {
	StopID      int64
	StationID   int64
	StationName string
	Arrival     sql.NullInt64
	Departure   sql.NullInt64
	StopOrder   int
	Lat         sql.NullFloat64
	Lon         sql.NullFloat64
}

// InsertRouteStops inserts multiple route stops using a transaction for better performance
func InsertRouteStops(db *sql.DB, stops []RouteStop) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO route_stops (
			id, trip_id, station_id, arrival, departure, stop_order
		) VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, rs := range stops {
		_, err := stmt.Exec(
			rs.ID, rs.TripID, rs.StationID, rs.Arrival, rs.Departure, rs.StopOrder,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting route stop: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createRouteStopsTable(tx *sql.Tx) {
	createTable(tx, "route_stops", `
		CREATE TABLE IF NOT EXISTS route_stops (
			id INTEGER PRIMARY KEY,
			trip_id INTEGER NOT NULL,
			station_id INTEGER NOT NULL,
			arrival INTEGER,
			departure INTEGER,
			stop_order INTEGER NOT NULL,
			FOREIGN KEY (trip_id) REFERENCES trips(id),
			FOREIGN KEY (station_id) REFERENCES stations(id)
		);`,
	)
}

// ListStopsForTrip returns a trip's stops joined with their stations,
// ordered by stop order. The ordering is authoritative and must never
// be re-derived from the recorded times.
func (q *Queries) ListStopsForTrip(ctx context.Context, tripID int64) ([]TripStopRow, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT rs.id, rs.station_id, s.name, rs.arrival, rs.departure, rs.stop_order,
		       s.latitude, s.longitude
		FROM route_stops rs
		JOIN stations s ON rs.station_id = s.id
		WHERE rs.trip_id = ?
		ORDER BY rs.stop_order;
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("error listing stops for trip: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var stops []TripStopRow
	for rows.Next() {
		var s TripStopRow
		if err := rows.Scan(
			&s.StopID, &s.StationID, &s.StationName, &s.Arrival, &s.Departure,
			&s.StopOrder, &s.Lat, &s.Lon,
		); err != nil {
			return nil, fmt.Errorf("error scanning trip stop: %w", err)
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

// ListReachableStationNames returns the distinct names of stations that
// appear after the named station, in stop order, on any trip through
// it. Single-trip forward reachability, not transitive closure.
func (q *Queries) ListReachableStationNames(ctx context.Context, stationName string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT DISTINCT s_end.name
		FROM stations s_start
		JOIN route_stops rs_start ON s_start.id = rs_start.station_id
		JOIN route_stops rs_end ON rs_start.trip_id = rs_end.trip_id
		JOIN stations s_end ON rs_end.station_id = s_end.id
		WHERE s_start.name = ?
		  AND rs_end.stop_order > rs_start.stop_order
		ORDER BY s_end.name;
	`, stationName)
	if err != nil {
		return nil, fmt.Errorf("error listing reachable stations: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning station name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ListReachableStationIDs is the id-keyed variant used when the caller
// needs to resolve track geometry for each reachable pair.
func (q *Queries) ListReachableStationIDs(ctx context.Context, stationID int64) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT DISTINCT rs_end.station_id
		FROM route_stops rs_start
		JOIN route_stops rs_end ON rs_start.trip_id = rs_end.trip_id
		WHERE rs_start.station_id = ?
		  AND rs_end.stop_order > rs_start.stop_order;
	`, stationID)
	if err != nil {
		return nil, fmt.Errorf("error listing reachable station ids: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning station id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
