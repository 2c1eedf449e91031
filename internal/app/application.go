package app

import (
	"log/slog"

	"railmap.euroticket.org/internal/appconf"
	"railmap.euroticket.org/internal/tracker"
	"railmap.euroticket.org/timetabledb"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the runtime configuration, a logger, the timetable
// store and the position engine built on top of it.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	DB      *timetabledb.Client
	Tracker *tracker.Tracker
}
