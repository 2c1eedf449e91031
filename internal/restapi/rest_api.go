package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"railmap.euroticket.org/internal/app"
)

// RestAPI is the thin JSON layer over the position engine. All routing
// and timetable logic lives in the tracker; handlers only translate
// between HTTP and the core's plain records.
type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// SetRoutes registers every endpoint on the router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/stations", http.HandlerFunc(api.stationsHandler))
	router.Handler(http.MethodGet, "/api/reachable", http.HandlerFunc(api.reachableHandler))
	router.Handler(http.MethodGet, "/api/reachable_paths", http.HandlerFunc(api.reachablePathsHandler))
	router.Handler(http.MethodGet, "/api/route_trains", http.HandlerFunc(api.routeTrainsHandler))
	router.Handler(http.MethodGet, "/api/train_positions", http.HandlerFunc(api.trainPositionsHandler))
	router.Handler(http.MethodGet, "/api/trips/:tripID/position", http.HandlerFunc(api.tripPositionHandler))
	router.Handler(http.MethodGet, "/api/track", http.HandlerFunc(api.trackHandler))
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
}

// Handler assembles the full middleware chain around the router.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = NewMetricsMiddleware()(handler)
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}
