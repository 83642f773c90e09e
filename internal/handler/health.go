package handler

import "net/http"

const serviceName = "passvault-api"

// HandleHealth handles GET /api/v1/health requests.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
}
