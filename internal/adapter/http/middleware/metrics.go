package middleware

import (
	"net/http"
	"time"

	"github.com/Abdurahmanit/GroupProject/video-service/internal/platform/metrics"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Metrics records request count and latency labelled by route pattern, so ids in
// paths do not explode label cardinality.
func Metrics(m *metrics.MetricsManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routePattern(r)
			if route == "" {
				route = "unmatched"
			}
			m.ObserveRequest(r.Method, route, status, time.Since(start))
		})
	}
}
