package restapi

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"railmap.euroticket.org/internal/app"
	"railmap.euroticket.org/internal/appconf"
	"railmap.euroticket.org/internal/logging"
	"railmap.euroticket.org/internal/tracker"
	"railmap.euroticket.org/timetabledb"
)

// createTestApi builds a RestAPI over an in-memory store seeded with
// the corridor fixture, rate limiting disabled.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	client, err := timetabledb.NewClient(timetabledb.NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	seedTimetable(t, client.DB)

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	application := &app.Application{
		Config:  appconf.Config{Env: appconf.Test, RateLimit: -1},
		Logger:  logger,
		DB:      client,
		Tracker: tracker.New(client, logger),
	}
	return NewRestAPI(application)
}

func createTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(createTestApi(t).Handler())
	t.Cleanup(server.Close)
	return server
}

// serveGet issues a GET against the test server and decodes the JSON
// response body into out (pass nil to skip decoding).
func serveGet(t *testing.T, server *httptest.Server, path string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp
}

func coord(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

func at(h, m, s int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(tracker.TimeOfDayFromClock(h, m, s)), Valid: true}
}

var noTime = sql.NullInt64{}

// seedTimetable mirrors the tracker fixture: a small Ukrainian-Polish
// corridor with one overnight trip, one weekend-only trip and one trip
// through a coordinate-less station.
func seedTimetable(t *testing.T, db *sql.DB) {
	t.Helper()

	require.NoError(t, timetabledb.InsertStations(db, []timetabledb.Station{
		{ID: 1, Name: "Zlochiv", Lat: coord(49.8050), Lon: coord(24.8940)},
		{ID: 2, Name: "Lviv", Lat: coord(49.8397), Lon: coord(24.0297), Platforms: sql.NullInt64{Int64: 5, Valid: true}},
		{ID: 3, Name: "Przemyśl Główny", Lat: coord(49.7847), Lon: coord(22.7745)},
		{ID: 4, Name: "Kyiv", Lat: coord(50.4501), Lon: coord(30.5234)},
		{ID: 5, Name: "Ternopil"},
	}))

	require.NoError(t, timetabledb.InsertTrains(db, []timetabledb.Train{
		{ID: 1, Number: "743", Name: "Intercity", HasWifi: true, HasAirCon: true},
		{ID: 2, Number: "26", Name: "Night Express", HasRestaurant: true},
		{ID: 3, Number: "705", IsAccessible: true},
	}))

	require.NoError(t, timetabledb.InsertTrips(db, []timetabledb.Trip{
		{ID: 1, TrainID: 1, DaysMask: 127},
		{ID: 2, TrainID: 2, DaysMask: 127},
		{ID: 3, TrainID: 3, DaysMask: 96},
		{ID: 4, TrainID: 1, DaysMask: 127},
	}))

	require.NoError(t, timetabledb.InsertRouteStops(db, []timetabledb.RouteStop{
		{ID: 1, TripID: 1, StationID: 1, Arrival: noTime, Departure: at(17, 0, 0), StopOrder: 1},
		{ID: 2, TripID: 1, StationID: 2, Arrival: at(17, 50, 0), Departure: at(18, 0, 0), StopOrder: 2},
		{ID: 3, TripID: 1, StationID: 3, Arrival: at(19, 0, 0), Departure: noTime, StopOrder: 3},

		{ID: 4, TripID: 2, StationID: 2, Arrival: noTime, Departure: at(23, 50, 0), StopOrder: 1},
		{ID: 5, TripID: 2, StationID: 3, Arrival: at(0, 15, 0), Departure: noTime, StopOrder: 2},

		{ID: 6, TripID: 3, StationID: 1, Arrival: noTime, Departure: at(17, 10, 0), StopOrder: 1},
		{ID: 7, TripID: 3, StationID: 3, Arrival: at(19, 10, 0), Departure: noTime, StopOrder: 2},

		{ID: 8, TripID: 4, StationID: 5, Arrival: noTime, Departure: at(8, 0, 0), StopOrder: 1},
		{ID: 9, TripID: 4, StationID: 1, Arrival: at(9, 0, 0), Departure: noTime, StopOrder: 2},
	}))

	require.NoError(t, timetabledb.InsertTripExceptions(db, []timetabledb.TripException{
		{ID: 1, TripID: 3, Date: "2026-08-25", Runs: true},
		{ID: 2, TripID: 1, Date: "2026-08-26", Runs: false},
	}))

	require.NoError(t, timetabledb.InsertTrackSegments(db, []timetabledb.TrackSegment{
		{ID: 1, Departure: 1, Arrival: 2, Path: `[[49.8050, 24.8940], [49.8300, 24.4500], [49.8397, 24.0297]]`},
	}))
}
