package restapi

import (
	"net/http"

	"railmap.euroticket.org/internal/models"
)

func (api *RestAPI) stationsHandler(w http.ResponseWriter, r *http.Request) {
	stations, err := api.Tracker.Stations(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if stations == nil {
		stations = []models.Station{}
	}
	api.sendResponse(w, r, stations)
}
