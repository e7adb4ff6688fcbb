package handlers

import "net/http"

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteText(w, http.StatusOK, "ok")
}
