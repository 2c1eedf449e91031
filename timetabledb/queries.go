package timetabledb

import "database/sql"

// Queries bundles all read-side database access. The core engine only
// ever reads; inserts live next to their table definitions and are used
// by the offline fill path and test fixtures.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}
