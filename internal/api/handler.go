// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mockprep/backend/internal/service"
)

// maxBodyBytes caps request bodies; a full session of answers fits easily.
const maxBodyBytes = 1 << 20

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	generation *service.GenerationService
	feedback   *service.FeedbackService
	sessions   *service.SessionService
	logger     *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(gen *service.GenerationService, fb *service.FeedbackService, sessions *service.SessionService, logger *slog.Logger) *Handler {
	return &Handler{
		generation: gen,
		feedback:   fb,
		sessions:   sessions,
		logger:     logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg}.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

type validator interface {
	Validate() error
}

// decodeJSON reads the request body into v. On failure it writes a 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// decodeAndValidate decodes the body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError maps service errors to HTTP responses. Returns true if
// an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, action string) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, service.ErrTopicRequired),
		errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrInvalidSession):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "unauthorized, sign in to continue")
	default:
		h.logger.Error("request failed", "action", action, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to "+action)
	}
	return true
}
