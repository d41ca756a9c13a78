package api

import (
	"context"
	"net/http"

	"github.com/mockprep/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type FeedbackRequest struct {
	Question      string `json:"question" example:"What is a closure?"`
	CorrectAnswer string `json:"correctAnswer" example:"A function bundled with references to its surrounding state."`
	UserAnswer    string `json:"userAnswer" example:"A function that remembers variables from where it was defined."`
}

func (r *FeedbackRequest) Validate() error {
	return r.toService().Validate()
}

func (r *FeedbackRequest) toService() service.FeedbackRequest {
	return service.FeedbackRequest{
		Question:      r.Question,
		CorrectAnswer: r.CorrectAnswer,
		UserAnswer:    r.UserAnswer,
	}
}

// FeedbackResponse carries the verdict. IsCorrectEnough is null when the
// model's reply could not be read as a verdict.
type FeedbackResponse struct {
	Feedback        string `json:"feedback" example:"Good, you also could mention lexical scope."`
	IsCorrectEnough *bool  `json:"is_correct_enough" example:"true"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getFeedback grades a user's answer against the model answer.
// @Summary      Grade an answer
// @Description  Judges whether the answer covers the key concepts. Degrades to a length check when the model is unavailable.
// @Tags         Practice
// @Accept       json
// @Produce      json
// @Param        body  body      FeedbackRequest  true  "Answer to grade"
// @Success      200   {object}  FeedbackResponse
// @Failure      400   {object}  map[string]string
// @Router       /feedback [post]
func (h *Handler) getFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	v, err := h.feedback.Evaluate(context.WithoutCancel(r.Context()), req.toService())
	if h.handleServiceError(w, err, "grade answer") {
		return
	}

	respondJSON(w, http.StatusOK, FeedbackResponse{
		Feedback:        v.Feedback,
		IsCorrectEnough: v.IsCorrectEnough,
	})
}
