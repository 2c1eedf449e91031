package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRoutesBetweenMatchesOrderAndRoute(t *testing.T) {
	tr := newTestTracker(t)

	trips, err := tr.RoutesBetween(context.Background(), "Zlochiv", "Przemyśl Główny", nil)
	require.NoError(t, err)
	require.Len(t, trips, 2)

	// Trip 1 brackets the pair at orders 1 and 3; the middle stop is
	// still part of the returned route.
	trip := trips[0]
	assert.Equal(t, int64(1), trip.TripID)
	assert.Equal(t, "743", trip.TrainNumber)
	assert.True(t, trip.HasWifi)
	assert.Equal(t, 1, trip.DepOrder)
	assert.Equal(t, 3, trip.ArrOrder)
	require.Len(t, trip.Route, 3)
	assert.Equal(t, "Lviv", trip.Route[1].Station)

	// First stop departs only, last stop arrives only.
	assert.Nil(t, trip.Route[0].Arrival)
	require.NotNil(t, trip.Route[0].Departure)
	assert.Equal(t, "17:00:00", *trip.Route[0].Departure)
	assert.Nil(t, trip.Route[2].Departure)
	require.NotNil(t, trip.Route[2].Arrival)
	assert.Equal(t, "19:00:00", *trip.Route[2].Arrival)
}

func TestRoutesBetweenRejectsReverseDirection(t *testing.T) {
	tr := newTestTracker(t)

	trips, err := tr.RoutesBetween(context.Background(), "Przemyśl Główny", "Zlochiv", nil)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestRoutesBetweenUnknownStation(t *testing.T) {
	tr := newTestTracker(t)

	trips, err := tr.RoutesBetween(context.Background(), "Atlantis", "Lviv", nil)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestRoutesBetweenWeekdayMaskFilter(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	// 2026-08-18 is a Tuesday with no recorded exceptions: the
	// weekend-only trip 3 (mask 96) is excluded.
	trips, err := tr.RoutesBetween(ctx, "Zlochiv", "Przemyśl Główny", date(2026, 8, 18))
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, int64(1), trips[0].TripID)

	// On a Saturday both run.
	trips, err = tr.RoutesBetween(ctx, "Zlochiv", "Przemyśl Główny", date(2026, 8, 29))
	require.NoError(t, err)
	assert.Len(t, trips, 2)
}

func TestRoutesBetweenExceptionsOverrideMask(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	// 2026-08-25 is a Tuesday, but trip 3 has an explicit runs=true
	// exception for that date.
	trips, err := tr.RoutesBetween(ctx, "Zlochiv", "Przemyśl Główny", date(2026, 8, 25))
	require.NoError(t, err)
	require.Len(t, trips, 2)

	// 2026-08-26 is a Wednesday, but trip 1 is explicitly cancelled;
	// only the weekend-only trip's exclusion by mask remains.
	trips, err = tr.RoutesBetween(ctx, "Zlochiv", "Przemyśl Główny", date(2026, 8, 26))
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestFindActiveTripsReturnsAllBracketingCandidates(t *testing.T) {
	tr := newTestTracker(t)

	// At 17:25 both Zlochiv->Przemysl trips are in flight; both come
	// back, no ranking applied.
	active, err := tr.FindActiveTrips(context.Background(), "Zlochiv", "Przemyśl Główny", TimeOfDayFromClock(17, 25, 0), nil)
	require.NoError(t, err)
	require.Len(t, active, 2)

	assert.Equal(t, int64(1), active[0].TripID)
	assert.Equal(t, int64(3), active[1].TripID)

	for _, train := range active {
		assert.GreaterOrEqual(t, train.SpeedRatio, 0.0)
		assert.LessOrEqual(t, train.SpeedRatio, 1.0)
		assert.NotZero(t, train.Lat)
		assert.NotZero(t, train.Lon)
	}
}

func TestFindActiveTripsOutsideTravelWindow(t *testing.T) {
	tr := newTestTracker(t)

	active, err := tr.FindActiveTrips(context.Background(), "Zlochiv", "Przemyśl Główny", TimeOfDayFromClock(12, 0, 0), nil)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestFindActiveTripsOvernight(t *testing.T) {
	tr := newTestTracker(t)

	active, err := tr.FindActiveTrips(context.Background(), "Lviv", "Przemyśl Główny", TimeOfDayFromClock(0, 5, 0), nil)
	require.NoError(t, err)
	require.Len(t, active, 1)

	assert.Equal(t, int64(2), active[0].TripID)
	assert.Equal(t, "26", active[0].TrainNumber)
	assert.Equal(t, "Lviv", active[0].PreviousStation)
	assert.Equal(t, "Przemyśl Główny", active[0].NextStation)
}

func TestFindActiveTripsPositionMatchesSingleComputation(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()
	ref := TimeOfDayFromClock(17, 25, 0)

	active, err := tr.FindActiveTrips(ctx, "Zlochiv", "Przemyśl Główny", ref, nil)
	require.NoError(t, err)
	require.NotEmpty(t, active)

	pos, err := tr.ComputeTrainPosition(ctx, active[0].TripID, ref)
	require.NoError(t, err)
	require.NotNil(t, pos)

	assert.Equal(t, pos.Lat, active[0].Lat)
	assert.Equal(t, pos.Lon, active[0].Lon)
	assert.Equal(t, pos.ProgressRatio, active[0].SpeedRatio)
}
