package tracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"railmap.euroticket.org/internal/models"
)

// ReachableStations returns the distinct names of stations reachable
// from the origin by continuing forward on any single trip through it.
// One hop per trip; no transitive closure across trip changes. An
// unknown origin yields an empty result.
func (t *Tracker) ReachableStations(ctx context.Context, stationName string) ([]string, error) {
	return t.queries.ListReachableStationNames(ctx, stationName)
}

// ReachablePaths resolves the recorded track geometry from the origin
// toward each reachable station, for drawing candidate paths before a
// destination is chosen. Pairs without geometry are simply absent.
func (t *Tracker) ReachablePaths(ctx context.Context, stationName string) ([][]models.CoordinatePoint, error) {
	origin, err := t.queries.GetStationByName(ctx, stationName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving station %q: %w", stationName, err)
	}

	reachable, err := t.queries.ListReachableStationIDs(ctx, origin.ID)
	if err != nil {
		return nil, err
	}
	if len(reachable) == 0 {
		return nil, nil
	}

	raws, err := t.queries.ListTrackPathsFrom(ctx, origin.ID, reachable)
	if err != nil {
		return nil, err
	}

	var paths [][]models.CoordinatePoint
	for _, raw := range raws {
		path, err := DecodeTrackPath(raw)
		if err != nil {
			// A single corrupt polyline should not hide the rest of
			// the candidates.
			if t.logger != nil {
				t.logger.Warn("skipping unreadable track path", "origin", origin.ID, "error", err)
			}
			continue
		}
		if len(path) > 0 {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// PathBetween stitches the physical track geometry between two
// stations along the first trip connecting them: one polyline per
// adjacent stop pair between the matched orders. Pairs without
// recorded geometry are skipped.
func (t *Tracker) PathBetween(ctx context.Context, fromStation, toStation string) ([][]models.CoordinatePoint, error) {
	routes, err := t.routesBetween(ctx, fromStation, toStation, nil)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, nil
	}

	route := routes[0]

	// Station ids of the stops on this leg, in stop order.
	var legStationIDs []int64
	for _, stop := range route.stops {
		if stop.StopOrder >= route.trip.DepOrder && stop.StopOrder <= route.trip.ArrOrder {
			legStationIDs = append(legStationIDs, stop.StationID)
		}
	}
	if len(legStationIDs) < 2 {
		return nil, nil
	}

	var segments [][]models.CoordinatePoint
	for i := 0; i < len(legStationIDs)-1; i++ {
		path, err := t.trackPath(ctx, legStationIDs[i], legStationIDs[i+1])
		if err != nil {
			return nil, err
		}
		if len(path) > 0 {
			segments = append(segments, path)
		}
	}
	return segments, nil
}
