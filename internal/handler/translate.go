package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mlorentedev/translink/internal/submit"
)

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	State      string `json:"state"`
	Message    string `json:"message"`
	Text       string `json:"text,omitempty"`
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"status_text,omitempty"`
}

// Translate runs one submission from a JSON body and reports the final
// display state. Every outcome of the submission itself is a 200; only
// malformed calls get an error status.
func Translate(tr Translation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		st := tr.run(r.Context(), submit.Input{
			Text:       req.Text,
			SourceLang: req.SourceLang,
			TargetLang: req.TargetLang,
		})

		writeJSON(w, http.StatusOK, translateResponse{
			State:      st.Kind.String(),
			Message:    st.Message,
			Text:       st.Text,
			Status:     st.Status,
			StatusText: st.StatusText,
		})
	}
}
