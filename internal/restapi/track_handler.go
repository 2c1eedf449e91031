package restapi

import (
	"net/http"

	"github.com/twpayne/go-polyline"

	"railmap.euroticket.org/internal/models"
)

// trackResponse carries the stitched physical track between two
// stations, both as raw coordinates and as encoded polylines for
// clients that prefer the compact form.
type trackResponse struct {
	Segments [][]models.CoordinatePoint `json:"segments"`
	Encoded  []string                   `json:"encoded"`
}

func (api *RestAPI) trackHandler(w http.ResponseWriter, r *http.Request) {
	query, ok := api.parseStationPair(w, r)
	if !ok {
		return
	}

	segments, err := api.Tracker.PathBetween(r.Context(), query.FromStation, query.ToStation)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := trackResponse{
		Segments: [][]models.CoordinatePoint{},
		Encoded:  []string{},
	}
	for _, segment := range segments {
		coords := make([][]float64, 0, len(segment))
		for _, point := range segment {
			coords = append(coords, []float64{point.Lat, point.Lon})
		}
		response.Segments = append(response.Segments, segment)
		response.Encoded = append(response.Encoded, string(polyline.EncodeCoords(coords)))
	}

	api.sendResponse(w, r, response)
}
