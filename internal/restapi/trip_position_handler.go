package restapi

import (
	"net/http"
	"strconv"

	"railmap.euroticket.org/internal/metrics"
	"railmap.euroticket.org/internal/models"
	"railmap.euroticket.org/internal/utils"
)

// tripPositionHandler serves one train's live position as a GeoJSON
// point feature, or JSON null when the trip is not running at the
// reference time.
func (api *RestAPI) tripPositionHandler(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(utils.ExtractParam(r, "tripID"), 10, 64)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"tripID": {"Invalid field value for field \"tripID\"."},
		})
		return
	}

	ref, ok := api.parseReferenceTime(w, r, r.URL.Query().Get("time"))
	if !ok {
		return
	}

	pos, err := api.Tracker.ComputeTrainPosition(r.Context(), tripID, ref)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if pos == nil {
		api.sendNull(w, r)
		return
	}

	metrics.PositionsComputed.Inc()
	api.sendResponse(w, r, models.NewTrainPositionFeature(*pos))
}
