package models

// RouteStop is one stop of a trip as served to the presentation layer.
// Arrival is null at the first stop and Departure at the last; times
// are formatted HH:MM:SS.
type RouteStop struct {
	Station   string  `json:"station"`
	Arrival   *string `json:"arrival"`
	Departure *string `json:"departure"`
	Order     int     `json:"order"`
}

// TripSummary is one trip connecting two queried stations, with its
// train attributes, full ordered route and the two matched stop orders.
type TripSummary struct {
	TripID      int64       `json:"trip_id"`
	TrainNumber string      `json:"train_number"`
	TrainName   string      `json:"train_name"`
	HasWifi     bool        `json:"has_wifi"`
	HasAirCon   bool        `json:"has_air_con"`
	HasRestaurant bool      `json:"has_restaurant"`
	HasBicycle  bool        `json:"has_bicycle"`
	Accessible  bool        `json:"accessible"`
	Route       []RouteStop `json:"route"`
	DepOrder    int         `json:"dep_order"`
	ArrOrder    int         `json:"arr_order"`
}

// ActiveTrain is a trip currently in flight between two stations,
// with its live interpolated position.
type ActiveTrain struct {
	TripID          int64   `json:"trip_id"`
	TrainNumber     string  `json:"train_number"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	PreviousStation string  `json:"previous_station"`
	NextStation     string  `json:"next_station"`
	SpeedRatio      float64 `json:"speed_ratio"`
	HasWifi         bool    `json:"has_wifi"`
	HasAirCon       bool    `json:"has_air_con"`
	HasRestaurant   bool    `json:"has_restaurant"`
	HasBicycle      bool    `json:"has_bicycle"`
	Accessible      bool    `json:"accessible"`
}
