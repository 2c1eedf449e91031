package models

// Station is a mappable station as served to the presentation layer.
// Only stations with coordinates are exposed here.
type Station struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Platforms int64   `json:"platforms"`
}
