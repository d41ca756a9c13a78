package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mockprep/backend/internal/auth"
	interviewsession "github.com/mockprep/backend/internal/domain/interview_session"
	"github.com/mockprep/backend/internal/domain/question"
	"github.com/mockprep/backend/internal/scoring"
)

// ── Request / Response types ────────────────────────────────────────────────

type SaveSessionRequest struct {
	Topic       string                      `json:"topic" example:"React"`
	SessionData []question.AnsweredQuestion `json:"sessionData"`
}

func (r *SaveSessionRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" || len(r.SessionData) == 0 {
		return errors.New("missing required fields: topic and sessionData")
	}
	return nil
}

type SessionResponse struct {
	ID          string                      `json:"id" example:"5f0c7d7e-8a43-4d0e-9a55-3c1e2b7f9a10"`
	Topic       string                      `json:"topic" example:"React"`
	SessionData []question.AnsweredQuestion `json:"session_data"`
	UserID      *string                     `json:"user_id" example:"user_2abc"`
	CreatedAt   time.Time                   `json:"created_at" example:"2025-03-01T12:00:00Z"`
}

type SaveSessionResponse struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message" example:"Session saved successfully"`
	Data    SessionResponse `json:"data"`
}

type ScoredSessionResponse struct {
	SessionResponse
	Score     int               `json:"score" example:"75"`
	Breakdown scoring.Breakdown `json:"breakdown"`
}

type DashboardResponse struct {
	TotalSessions int                     `json:"total_sessions" example:"4"`
	AverageScore  int                     `json:"average_score" example:"68"`
	Sessions      []ScoredSessionResponse `json:"sessions"`
}

func toSessionResponse(s *interviewsession.InterviewSession) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		Topic:       s.Topic,
		SessionData: s.SessionData,
		UserID:      s.UserID,
		CreatedAt:   s.CreatedAt,
	}
}

func toScoredResponses(sessions []interviewsession.ScoredSession) []ScoredSessionResponse {
	return lo.Map(sessions, func(s interviewsession.ScoredSession, _ int) ScoredSessionResponse {
		return ScoredSessionResponse{
			SessionResponse: toSessionResponse(&s.InterviewSession),
			Score:           s.Score,
			Breakdown:       s.Breakdown,
		}
	})
}

// ── Handlers ────────────────────────────────────────────────────────────────

// saveSession stores a finished practice run for the signed-in user.
// @Summary      Save a practice session
// @Description  Inserts a new session owned by the caller. Every save creates a new record.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      SaveSessionRequest  true  "Session to save"
// @Success      200   {object}  SaveSessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := auth.UserID(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized, sign in to save your session")
		return
	}

	var req SaveSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess, err := h.sessions.Save(ctx, userID, req.Topic, req.SessionData)
	if h.handleServiceError(w, err, "save session") {
		return
	}

	respondJSON(w, http.StatusOK, SaveSessionResponse{
		Success: true,
		Message: "Session saved successfully",
		Data:    toSessionResponse(sess),
	})
}

// listSessions returns the caller's sessions with their scores.
// @Summary      List practice sessions
// @Description  Returns the caller's sessions newest first, each with its score. Read failures yield an empty list.
// @Tags         Sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ScoredSessionResponse
// @Failure      401  {object}  map[string]string  "invalid token"
// @Router       /sessions [get]
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := auth.UserID(ctx)

	respondJSON(w, http.StatusOK, toScoredResponses(h.sessions.List(ctx, userID)))
}

// getDashboard returns the caller's history with total and average score.
// @Summary      Dashboard summary
// @Tags         Sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  DashboardResponse
// @Failure      401  {object}  map[string]string  "invalid token"
// @Router       /dashboard [get]
func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := auth.UserID(ctx)

	d := h.sessions.Dashboard(ctx, userID)
	respondJSON(w, http.StatusOK, DashboardResponse{
		TotalSessions: d.TotalSessions,
		AverageScore:  d.AverageScore,
		Sessions:      toScoredResponses(d.Sessions),
	})
}
