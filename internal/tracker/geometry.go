package tracker

import (
	"encoding/json"
	"fmt"

	"railmap.euroticket.org/internal/models"
)

// DecodeTrackPath parses a stored polyline into coordinate points.
// The stored form is a JSON array of [lat, lon] pairs. An empty or
// missing payload decodes to nil (the caller substitutes the straight
// station-to-station line); a malformed payload is rejected rather
// than truncated.
func DecodeTrackPath(raw string) ([]models.CoordinatePoint, error) {
	if raw == "" {
		return nil, nil
	}

	var path []models.CoordinatePoint
	if err := json.Unmarshal([]byte(raw), &path); err != nil {
		return nil, fmt.Errorf("malformed track path: %w", err)
	}
	return path, nil
}
