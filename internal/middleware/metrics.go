package middleware

import (
	"net/http"
	"strconv"

	"github.com/mlorentedev/translink/internal/metrics"
)

// Metrics records request count by method, route, and status code.
// Unknown paths collapse into one label to keep cardinality bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		metrics.RequestsTotal.WithLabelValues(r.Method, routeLabel(r.URL.Path), strconv.Itoa(sw.status)).Inc()
	})
}

func routeLabel(path string) string {
	switch path {
	case "/", "/api/translate", "/api/languages", "/api/health", "/metrics":
		return path
	default:
		return "other"
	}
}
