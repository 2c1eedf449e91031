package tracker

import (
	"context"
	"fmt"

	"railmap.euroticket.org/internal/models"
	"railmap.euroticket.org/timetabledb"
)

// SegmentStop is one endpoint of an active segment. Time is the
// corrected instant in seconds and may exceed one day when the segment
// crosses midnight.
type SegmentStop struct {
	StationID int64
	Name      string
	Time      TimeOfDay
	Coord     models.CoordinatePoint
	HasCoord  bool
	StopOrder int
}

// ActiveSegment is the pair of consecutive timetabled stops bracketing
// a reference time, plus the recorded track geometry between them.
// Path is nil when the pair has no recorded geometry.
type ActiveSegment struct {
	Departure SegmentStop
	Arrival   SegmentStop
	Reference TimeOfDay
	Path      []models.CoordinatePoint
}

// ResolveActiveSegment finds the two consecutive stops of a trip such
// that the train is between them at the reference time. It returns
// (nil, nil) when the trip is unknown, has fewer than two stops, or is
// not running at that time; none of those are errors.
//
// Two corrections keep the comparison meaningful around midnight: an
// arrival earlier on the clock than its departure is shifted forward a
// day, and a reference more than 12 hours before the departure is
// treated as belonging to the following day.
func (t *Tracker) ResolveActiveSegment(ctx context.Context, tripID int64, ref TimeOfDay) (*ActiveSegment, error) {
	stops, err := t.queries.ListStopsForTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("loading stops for trip %d: %w", tripID, err)
	}
	if len(stops) < 2 {
		return nil, nil
	}

	for i := 0; i < len(stops)-1; i++ {
		depStop := stops[i]
		arrStop := stops[i+1]

		depCall, ok := StopCallFromNullable(depStop.Arrival, depStop.Departure)
		if !ok {
			continue
		}
		arrCall, ok := StopCallFromNullable(arrStop.Arrival, arrStop.Departure)
		if !ok {
			continue
		}

		depTime, ok := depCall.DepartureOrArrival()
		if !ok {
			continue
		}
		arrTime, ok := arrCall.ArrivalOrDeparture()
		if !ok {
			continue
		}

		if arrTime < depTime {
			arrTime += SecondsPerDay
		}

		current := ref
		if current < depTime && int(depTime-current) > 12*3600 {
			current += SecondsPerDay
		}

		if depTime <= current && current <= arrTime {
			path, err := t.trackPath(ctx, depStop.StationID, arrStop.StationID)
			if err != nil {
				return nil, err
			}

			return &ActiveSegment{
				Departure: segmentStop(depStop, depTime),
				Arrival:   segmentStop(arrStop, arrTime),
				Reference: current,
				Path:      path,
			}, nil
		}
	}

	return nil, nil
}

func (t *Tracker) trackPath(ctx context.Context, depStationID, arrStationID int64) ([]models.CoordinatePoint, error) {
	raw, err := t.queries.GetTrackPath(ctx, depStationID, arrStationID)
	if err != nil {
		return nil, fmt.Errorf("loading track path %d->%d: %w", depStationID, arrStationID, err)
	}
	path, err := DecodeTrackPath(raw)
	if err != nil {
		return nil, fmt.Errorf("track path %d->%d: %w", depStationID, arrStationID, err)
	}
	return path, nil
}

func segmentStop(row timetabledb.TripStopRow, at TimeOfDay) SegmentStop {
	stop := SegmentStop{
		StationID: row.StationID,
		Name:      row.StationName,
		Time:      at,
		StopOrder: row.StopOrder,
	}
	if row.Lat.Valid && row.Lon.Valid {
		stop.Coord = models.CoordinatePoint{Lat: row.Lat.Float64, Lon: row.Lon.Float64}
		stop.HasCoord = true
	}
	return stop
}
