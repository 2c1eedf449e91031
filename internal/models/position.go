package models

// TrainPosition is the computed position of one train at one instant.
// It is a pure function of (trip id, reference time) over the read-only
// timetable, so recomputing it is always safe.
type TrainPosition struct {
	TripID            int64   `json:"trip_id"`
	Lat               float64 `json:"lat"`
	Lon               float64 `json:"lon"`
	ProgressRatio     float64 `json:"progress_ratio"`
	PreviousStation   string  `json:"previous_station"`
	PreviousStationID int64   `json:"previous_station_id"`
	NextStation       string  `json:"next_station"`
	NextStationID     int64   `json:"next_station_id"`
	DepStopOrder      int     `json:"dep_stop_order"`
	ArrStopOrder      int     `json:"arr_stop_order"`
	CalculatedAt      string  `json:"calculated_at"`
}
