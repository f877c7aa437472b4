package handlers

import (
	"net/http"
)

// Health responds with a fixed liveness status.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeText(w, http.StatusOK, "OK")
}
