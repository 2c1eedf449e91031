package models

import (
	"encoding/json"
	"fmt"
)

// CoordinatePoint is a single (lat, lon) pair. On the wire it is a
// fixed two-component array in [lat, lon] order, matching the stored
// track geometry.
type CoordinatePoint struct {
	Lat float64
	Lon float64
}

func (p CoordinatePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lat, p.Lon})
}

// UnmarshalJSON enforces the two-component shape. Malformed entries are
// rejected outright rather than truncated or zero-filled.
func (p *CoordinatePoint) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate must be a numeric pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate must have exactly 2 components, got %d", len(pair))
	}
	p.Lat = pair[0]
	p.Lon = pair[1]
	return nil
}
