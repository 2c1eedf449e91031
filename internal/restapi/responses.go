package restapi

import (
	"encoding/json"
	"net/http"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

// sendNull mirrors the "train not running" answer: a literal JSON null
// rather than an error status.
func (api *RestAPI) sendNull(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write([]byte("null"))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

// sendEmptyList answers exploratory queries with missing or unknown
// inputs; absence is a normal outcome, not an error.
func (api *RestAPI) sendEmptyList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write([]byte("[]"))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}
