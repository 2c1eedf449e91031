// Package tracker is the temporal-geometric position engine: it maps a
// trip and a wall-clock time onto the timetabled segment the train
// currently occupies, and resolves elapsed time within that segment to
// a physical coordinate on the track geometry.
//
// The tracker is stateless. Every query re-reads what it needs from the
// read-only timetable store, so concurrent calls need no coordination
// and identical inputs always produce identical results.
package tracker

import (
	"log/slog"

	"railmap.euroticket.org/timetabledb"
)

// Tracker answers position and routing queries over the timetable
// store. It holds no mutable state beyond the handles it is built with.
type Tracker struct {
	queries *timetabledb.Queries
	logger  *slog.Logger
}

func New(client *timetabledb.Client, logger *slog.Logger) *Tracker {
	return &Tracker{
		queries: client.Queries,
		logger:  logger,
	}
}
