package restapi

import (
	"net/http"

	"railmap.euroticket.org/internal/metrics"
	"railmap.euroticket.org/internal/models"
)

func (api *RestAPI) trainPositionsHandler(w http.ResponseWriter, r *http.Request) {
	query, ok := api.parseStationPair(w, r)
	if !ok {
		return
	}

	ref, ok := api.parseReferenceTime(w, r, query.Time)
	if !ok {
		return
	}

	trains, err := api.Tracker.FindActiveTrips(r.Context(), query.FromStation, query.ToStation, ref, parseDate(query.Date))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	metrics.ActiveTrains.Observe(float64(len(trains)))

	if trains == nil {
		trains = []models.ActiveTrain{}
	}
	api.sendResponse(w, r, trains)
}
