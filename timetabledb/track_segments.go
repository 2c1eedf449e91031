package timetabledb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// TrackSegment is the physical rail geometry between two stations that
// are adjacent on some trip. Path is a JSON array of [lat, lon] pairs,
// denser than the stop list. A pair may have no recorded segment.
type TrackSegment struct {
	ID        int64
	Departure int64
	Arrival   int64
	Path      string
}

// InsertTrackSegments inserts track geometry using a transaction for better performance
func InsertTrackSegments(db *sql.DB, segments []TrackSegment) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO track_segments (
			id, departure, arrival, path
		) VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, seg := range segments {
		_, err := stmt.Exec(seg.ID, seg.Departure, seg.Arrival, seg.Path)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting track segment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func createTrackSegmentsTable(tx *sql.Tx) {
	createTable(tx, "track_segments", `
		CREATE TABLE IF NOT EXISTS track_segments (
			id INTEGER PRIMARY KEY,
			departure INTEGER NOT NULL,
			arrival INTEGER NOT NULL,
			path TEXT,
			FOREIGN KEY (departure) REFERENCES stations(id),
			FOREIGN KEY (arrival) REFERENCES stations(id)
		);`,
	)
}

// GetTrackPath returns the raw JSON polyline for a directed station
// pair, or "" when the pair has no recorded geometry. Absence is a
// normal outcome; callers substitute the straight station-to-station
// line.
func (q *Queries) GetTrackPath(ctx context.Context, depStationID, arrStationID int64) (string, error) {
	row := q.db.QueryRowContext(ctx, `
		SELECT COALESCE(path, '')
		FROM track_segments WHERE departure = ? AND arrival = ?;
	`, depStationID, arrStationID)

	var path string
	err := row.Scan(&path)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error fetching track path: %w", err)
	}
	return path, nil
}

// ListTrackPathsFrom returns the raw polylines recorded from one
// station toward any of the given arrival stations.
func (q *Queries) ListTrackPathsFrom(ctx context.Context, depStationID int64, arrStationIDs []int64) ([]string, error) {
	if len(arrStationIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(arrStationIDs)), ",")
	args := make([]any, 0, len(arrStationIDs)+1)
	args = append(args, depStationID)
	for _, id := range arrStationIDs {
		args = append(args, id)
	}

	rows, err := q.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT path FROM track_segments
		WHERE departure = ? AND arrival IN (%s)
		  AND path IS NOT NULL AND path != '';
	`, placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("error listing track paths: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("error scanning track path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
