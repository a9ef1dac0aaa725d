package handler

import (
	"net/http"

	"github.com/mlorentedev/translink/internal/lang"
)

func Languages(options []lang.Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, options)
	}
}
