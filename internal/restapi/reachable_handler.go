package restapi

import (
	"net/http"

	"railmap.euroticket.org/internal/models"
)

func (api *RestAPI) reachableHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		api.sendEmptyList(w, r)
		return
	}

	names, err := api.Tracker.ReachableStations(r.Context(), name)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if names == nil {
		names = []string{}
	}
	api.sendResponse(w, r, names)
}

func (api *RestAPI) reachablePathsHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		api.sendEmptyList(w, r)
		return
	}

	paths, err := api.Tracker.ReachablePaths(r.Context(), name)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	if paths == nil {
		paths = [][]models.CoordinatePoint{}
	}
	api.sendResponse(w, r, paths)
}
