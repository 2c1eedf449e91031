package tracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"railmap.euroticket.org/internal/models"
	"railmap.euroticket.org/timetabledb"
)

// tripRoute pairs a matched trip with its full ordered stop list.
type tripRoute struct {
	trip  timetabledb.TripBetweenRow
	stops []timetabledb.TripStopRow
}

// routesBetween enumerates trips visiting the departure station
// strictly before the arrival station. A date filters by the weekly
// recurrence mask, with a recorded calendar exception overriding the
// mask for that specific date. Unknown station names yield an empty
// result.
func (t *Tracker) routesBetween(ctx context.Context, fromStation, toStation string, date *time.Time) ([]tripRoute, error) {
	depStation, err := t.queries.GetStationByName(ctx, fromStation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving station %q: %w", fromStation, err)
	}

	arrStation, err := t.queries.GetStationByName(ctx, toStation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving station %q: %w", toStation, err)
	}

	trips, err := t.queries.ListTripsBetween(ctx, depStation.ID, arrStation.ID)
	if err != nil {
		return nil, err
	}

	var routes []tripRoute
	for _, trip := range trips {
		if date != nil {
			runs, err := t.tripRunsOn(ctx, trip.TripID, trip.DaysMask, *date)
			if err != nil {
				return nil, err
			}
			if !runs {
				continue
			}
		}

		stops, err := t.queries.ListStopsForTrip(ctx, trip.TripID)
		if err != nil {
			return nil, err
		}

		routes = append(routes, tripRoute{trip: trip, stops: stops})
	}

	return routes, nil
}

// tripRunsOn layers calendar exceptions over the weekly mask: an
// explicit row for the date wins either way.
func (t *Tracker) tripRunsOn(ctx context.Context, tripID int64, mask int, date time.Time) (bool, error) {
	ex, err := t.queries.GetTripException(ctx, tripID, date.Format("2006-01-02"))
	if err == nil {
		return ex.Runs, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("loading exception for trip %d: %w", tripID, err)
	}

	return RunsOnWeekday(mask, date), nil
}

// RoutesBetween is the presentation-ready form of routesBetween: each
// trip with its train attributes, full ordered route and the two
// matched stop orders.
func (t *Tracker) RoutesBetween(ctx context.Context, fromStation, toStation string, date *time.Time) ([]models.TripSummary, error) {
	routes, err := t.routesBetween(ctx, fromStation, toStation, date)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TripSummary, 0, len(routes))
	for _, route := range routes {
		summaries = append(summaries, tripSummary(route))
	}
	return summaries, nil
}

func tripSummary(route tripRoute) models.TripSummary {
	stops := make([]models.RouteStop, 0, len(route.stops))
	for _, s := range route.stops {
		stops = append(stops, models.RouteStop{
			Station:   s.StationName,
			Arrival:   formatNullableTime(s.Arrival),
			Departure: formatNullableTime(s.Departure),
			Order:     s.StopOrder,
		})
	}

	return models.TripSummary{
		TripID:        route.trip.TripID,
		TrainNumber:   route.trip.TrainNumber,
		TrainName:     route.trip.TrainName,
		HasWifi:       route.trip.HasWifi,
		HasAirCon:     route.trip.HasAirCon,
		HasRestaurant: route.trip.HasRestaurant,
		HasBicycle:    route.trip.HasBicycleHolder,
		Accessible:    route.trip.IsAccessible,
		Route:         stops,
		DepOrder:      route.trip.DepOrder,
		ArrOrder:      route.trip.ArrOrder,
	}
}

func formatNullableTime(v sql.NullInt64) *string {
	if !v.Valid {
		return nil
	}
	s := TimeOfDay(v.Int64).String()
	return &s
}

// FindActiveTrips selects, among the trips connecting two stations,
// those currently in flight between their matched stops at the
// reference time, and computes each one's live position. Every
// bracketing candidate is returned; no ranking is applied.
func (t *Tracker) FindActiveTrips(ctx context.Context, fromStation, toStation string, ref TimeOfDay, date *time.Time) ([]models.ActiveTrain, error) {
	routes, err := t.routesBetween(ctx, fromStation, toStation, date)
	if err != nil {
		return nil, err
	}

	var active []models.ActiveTrain
	for _, route := range routes {
		if !tripInFlight(route, ref) {
			continue
		}

		pos, err := t.ComputeTrainPosition(ctx, route.trip.TripID, ref)
		if err != nil {
			return nil, err
		}
		if pos == nil {
			continue
		}

		active = append(active, models.ActiveTrain{
			TripID:          route.trip.TripID,
			TrainNumber:     route.trip.TrainNumber,
			Lat:             pos.Lat,
			Lon:             pos.Lon,
			PreviousStation: pos.PreviousStation,
			NextStation:     pos.NextStation,
			SpeedRatio:      pos.ProgressRatio,
			HasWifi:         route.trip.HasWifi,
			HasAirCon:       route.trip.HasAirCon,
			HasRestaurant:   route.trip.HasRestaurant,
			HasBicycle:      route.trip.HasBicycleHolder,
			Accessible:      route.trip.IsAccessible,
		})
	}

	return active, nil
}

// tripInFlight checks whether the reference time falls between the
// trip's departure from the matched origin stop and its arrival at the
// matched destination stop, with the same overnight and 12-hour
// corrections as the segment resolver.
func tripInFlight(route tripRoute, ref TimeOfDay) bool {
	var depStop, arrStop *timetabledb.TripStopRow
	for i := range route.stops {
		switch route.stops[i].StopOrder {
		case route.trip.DepOrder:
			depStop = &route.stops[i]
		case route.trip.ArrOrder:
			arrStop = &route.stops[i]
		}
	}
	if depStop == nil || arrStop == nil {
		return false
	}

	depCall, ok := StopCallFromNullable(depStop.Arrival, depStop.Departure)
	if !ok {
		return false
	}
	arrCall, ok := StopCallFromNullable(arrStop.Arrival, arrStop.Departure)
	if !ok {
		return false
	}

	depTime, ok := depCall.DepartureOrArrival()
	if !ok {
		return false
	}
	arrTime, ok := arrCall.ArrivalOrDeparture()
	if !ok {
		return false
	}

	if arrTime < depTime {
		arrTime += SecondsPerDay
	}

	current := ref
	if current < depTime && int(depTime-current) > 12*3600 {
		current += SecondsPerDay
	}

	return depTime <= current && current <= arrTime
}
