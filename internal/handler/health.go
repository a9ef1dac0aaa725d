package handler

import (
	"net/http"

	"github.com/mlorentedev/translink/internal/adapter"
	"github.com/mlorentedev/translink/internal/metrics"
)

type endpointStatus struct {
	Translator string `json:"translator"`
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status   string         `json:"status"`
	Endpoint endpointStatus `json:"endpoint"`
}

func Health(t adapter.Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := endpointStatus{Translator: t.Name(), Available: t.Available()}
		if s.Available {
			metrics.EndpointAvailable.Set(1)
		} else {
			metrics.EndpointAvailable.Set(0)
			s.Reason = unavailableReason(t)
		}

		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Endpoint: s})
	}
}

func unavailableReason(t adapter.Translator) string {
	switch t.(type) {
	case *adapter.HTTPAdapter:
		return "translation endpoint unreachable"
	default:
		return "unavailable"
	}
}
