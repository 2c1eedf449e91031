package restapi

import (
	"net/http"

	"railmap.euroticket.org/internal/models"
)

func (api *RestAPI) routeTrainsHandler(w http.ResponseWriter, r *http.Request) {
	query, ok := api.parseStationPair(w, r)
	if !ok {
		return
	}

	trips, err := api.Tracker.RoutesBetween(r.Context(), query.FromStation, query.ToStation, parseDate(query.Date))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if trips == nil {
		trips = []models.TripSummary{}
	}
	api.sendResponse(w, r, trips)
}
