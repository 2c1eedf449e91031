package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestDuration tracks wall time per endpoint.
	RequestDuration = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: "railmap_http_request_duration_seconds",
		Help: "Duration of HTTP requests.",
	}, []string{"endpoint"})

	// PositionsComputed counts successful train position computations.
	PositionsComputed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "railmap_positions_computed_total",
		Help: "Number of train positions computed.",
	})

	// ActiveTrains records how many in-flight trains each position
	// query returned.
	ActiveTrains = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "railmap_active_trains_per_query",
		Help:    "Active trains returned per position query.",
		Buckets: []float64{0, 1, 2, 5, 10, 20},
	})
)

func init() {
	prometheus.MustRegister(RequestDuration, PositionsComputed, ActiveTrains)
}
