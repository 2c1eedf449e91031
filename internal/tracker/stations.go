package tracker

import (
	"context"

	"railmap.euroticket.org/internal/models"
)

// Stations lists every station that has coordinates, in the shape the
// map layer consumes. Stations without coordinates are valid timetable
// entries but cannot be placed, so they are not returned here.
func (t *Tracker) Stations(ctx context.Context) ([]models.Station, error) {
	rows, err := t.queries.ListStationsWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}

	stations := make([]models.Station, 0, len(rows))
	for _, row := range rows {
		station := models.Station{
			ID:   row.ID,
			Name: row.Name,
			Lat:  row.Lat.Float64,
			Lon:  row.Lon.Float64,
		}
		if row.Platforms.Valid {
			station.Platforms = row.Platforms.Int64
		}
		stations = append(stations, station)
	}
	return stations, nil
}
