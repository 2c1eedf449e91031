package restapi

import (
	"net/http"
	"time"

	"railmap.euroticket.org/internal/metrics"
)

// NewMetricsMiddleware records per-endpoint request durations.
func NewMetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			metrics.RequestDuration.
				WithLabelValues(r.URL.Path).
				Observe(time.Since(start).Seconds())
		})
	}
}
