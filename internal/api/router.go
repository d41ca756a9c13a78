// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts every API route on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /generate", h.generateQuestions)
	mux.HandleFunc("POST /feedback", h.getFeedback)

	mux.HandleFunc("POST /sessions", h.saveSession)
	mux.HandleFunc("GET /sessions", h.listSessions)
	mux.HandleFunc("GET /dashboard", h.getDashboard)
}
