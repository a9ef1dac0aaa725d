package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlorentedev/translink/internal/handler"
	"github.com/mlorentedev/translink/internal/lang"
	"github.com/mlorentedev/translink/internal/middleware"
)

// SetupMux wires handlers with the full middleware chain. rateLimit is the
// number of requests each client IP may make per minute.
func SetupMux(tr handler.Translation, languages []lang.Option, rateLimit int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", handler.Page(tr, languages))
	mux.HandleFunc("/api/translate", handler.Translate(tr))
	mux.HandleFunc("/api/languages", handler.Languages(languages))
	mux.HandleFunc("/api/health", handler.Health(tr.Translator))
	mux.Handle("/metrics", promhttp.Handler())

	rl := middleware.NewRateLimiter(rateLimit, time.Minute)
	return middleware.Chain(mux, rl)
}
