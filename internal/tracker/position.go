package tracker

import (
	"context"
	"math"

	"railmap.euroticket.org/internal/models"
)

const earthRadiusKm = 6371.0

// Haversine computes the great-circle distance between two points in
// kilometers. Callers guarantee finite inputs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// distanceTraveled converts elapsed/total segment duration into the
// distance covered along the segment and the progress ratio. A zero or
// negative scheduled duration counts as already arrived.
func distanceTraveled(elapsedSeconds, totalSeconds, totalDistance float64) (float64, float64) {
	if totalSeconds <= 0 {
		return totalDistance, 1.0
	}

	ratio := elapsedSeconds / totalSeconds
	ratio = math.Max(0.0, math.Min(1.0, ratio))

	return ratio * totalDistance, ratio
}

// interpolateAlong walks the polyline's edges until the accumulated
// length reaches target, then interpolates linearly within that edge.
// A zero-length edge pins the position to its start; if rounding leaves
// no edge satisfied the final point wins.
func interpolateAlong(path []models.CoordinatePoint, edgeLengths []float64, target float64) models.CoordinatePoint {
	current := path[len(path)-1]

	accumulated := 0.0
	for i, length := range edgeLengths {
		if accumulated+length >= target {
			overshoot := target - accumulated

			edgeRatio := 0.0
			if length > 0 {
				edgeRatio = overshoot / length
			}

			p1 := path[i]
			p2 := path[i+1]
			return models.CoordinatePoint{
				Lat: p1.Lat + (p2.Lat-p1.Lat)*edgeRatio,
				Lon: p1.Lon + (p2.Lon-p1.Lon)*edgeRatio,
			}
		}
		accumulated += length
	}

	return current
}

// ComputeTrainPosition resolves a trip's active segment at the
// reference time and interpolates the physical position within it.
// Returns (nil, nil) when the trip is not running, and also when no
// geometry exists and an endpoint station has no coordinates to fall
// back on.
func (t *Tracker) ComputeTrainPosition(ctx context.Context, tripID int64, ref TimeOfDay) (*models.TrainPosition, error) {
	segment, err := t.ResolveActiveSegment(ctx, tripID, ref)
	if err != nil {
		return nil, err
	}
	if segment == nil {
		return nil, nil
	}

	path := segment.Path
	if len(path) < 2 {
		if !segment.Departure.HasCoord || !segment.Arrival.HasCoord {
			return nil, nil
		}
		path = []models.CoordinatePoint{segment.Departure.Coord, segment.Arrival.Coord}
	}

	elapsed := float64(segment.Reference - segment.Departure.Time)
	total := float64(segment.Arrival.Time - segment.Departure.Time)

	edgeLengths := make([]float64, 0, len(path)-1)
	totalDistance := 0.0
	for i := 0; i < len(path)-1; i++ {
		d := Haversine(path[i].Lat, path[i].Lon, path[i+1].Lat, path[i+1].Lon)
		edgeLengths = append(edgeLengths, d)
		totalDistance += d
	}

	traveled, ratio := distanceTraveled(elapsed, total, totalDistance)
	position := interpolateAlong(path, edgeLengths, traveled)

	return &models.TrainPosition{
		TripID:            tripID,
		Lat:               position.Lat,
		Lon:               position.Lon,
		ProgressRatio:     math.Round(ratio*10000) / 10000,
		PreviousStation:   segment.Departure.Name,
		PreviousStationID: segment.Departure.StationID,
		NextStation:       segment.Arrival.Name,
		NextStationID:     segment.Arrival.StationID,
		DepStopOrder:      segment.Departure.StopOrder,
		ArrStopOrder:      segment.Arrival.StopOrder,
		CalculatedAt:      ref.String(),
	}, nil
}
