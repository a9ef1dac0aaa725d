package middleware

import "net/http"

const maxBodyBytes = 64 * 1024

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → RateLimit → MaxBytes → mux
func Chain(handler http.Handler, rl *RateLimiter) http.Handler {
	h := handler
	h = MaxBytes(maxBodyBytes)(h)
	h = RateLimit(rl)(h)
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}
