package models

// PointGeometry is a GeoJSON point. Coordinates are [lon, lat] per the
// GeoJSON spec, the reverse of the internal order.
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type Feature struct {
	Type       string        `json:"type"`
	Geometry   PointGeometry `json:"geometry"`
	Properties any           `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// PositionProperties is the property bag attached to a train position
// feature.
type PositionProperties struct {
	TripID            int64   `json:"trip_id"`
	CurrentSpeedRatio float64 `json:"current_speed_ratio"`
	NextStation       string  `json:"next_station"`
	NextStationID     int64   `json:"next_station_id"`
	PreviousStation   string  `json:"previous_station"`
	DepStopOrder      int     `json:"dep_stop_order"`
	ArrStopOrder      int     `json:"arr_stop_order"`
	DelayStatus       string  `json:"delay_status"`
	CalculatedAt      string  `json:"calculated_at"`
}

// NewTrainPositionFeature wraps a computed position in the GeoJSON
// feature shape the map layer consumes.
func NewTrainPositionFeature(pos TrainPosition) Feature {
	return Feature{
		Type: "Feature",
		Geometry: PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{pos.Lon, pos.Lat},
		},
		Properties: PositionProperties{
			TripID:            pos.TripID,
			CurrentSpeedRatio: pos.ProgressRatio,
			NextStation:       pos.NextStation,
			NextStationID:     pos.NextStationID,
			PreviousStation:   pos.PreviousStation,
			DepStopOrder:      pos.DepStopOrder,
			ArrStopOrder:      pos.ArrStopOrder,
			DelayStatus:       "on_time",
			CalculatedAt:      pos.CalculatedAt,
		},
	}
}

func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
