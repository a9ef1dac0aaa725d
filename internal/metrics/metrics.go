package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translink_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// SubmissionsTotal counts finished submissions by their final display state.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translink_submissions_total",
		Help: "Translation submissions by outcome.",
	}, []string{"outcome"})

	// TranslateDuration tracks the round trip to the translation endpoint.
	TranslateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "translink_translate_duration_seconds",
		Help:    "Time spent waiting on the translation endpoint.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"translator"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "translink_input_chars",
		Help:    "Number of characters in submitted text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// StaleWritesTotal counts display writes dropped because a newer submission started.
	StaleWritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "translink_stale_writes_total",
		Help: "Display writes dropped in favour of a newer submission.",
	})

	// EndpointAvailable tracks whether the translation endpoint is reachable.
	EndpointAvailable = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "translink_endpoint_available",
		Help: "Whether the translation endpoint is reachable (1) or not (0).",
	})
)
