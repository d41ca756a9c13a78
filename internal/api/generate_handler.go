package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateRequest struct {
	Topic string `json:"topic" example:"JavaScript"`
}

func (r *GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return errors.New("topic is required")
	}
	return nil
}

type QuestionResponse struct {
	Question string `json:"question" example:"What is a closure?"`
	Answer   string `json:"answer" example:"A function bundled with references to its surrounding state."`
}

// contentSourceHeader tells the client whether questions came from the
// model ("ai") or the built-in set ("canned").
const contentSourceHeader = "X-Content-Source"

// ── Handlers ────────────────────────────────────────────────────────────────

// generateQuestions returns a batch of interview questions for a topic.
// @Summary      Generate interview questions
// @Description  Asks the model for ten question/answer pairs on the topic. Call again to load more.
// @Tags         Practice
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateRequest  true  "Topic"
// @Success      200   {array}   QuestionResponse
// @Header       200   {string}  X-Content-Source  "ai or canned"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /generate [post]
func (h *Handler) generateQuestions(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	// Model calls run to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	gen, err := h.generation.Generate(ctx, req.Topic)
	if h.handleServiceError(w, err, "generate questions") {
		return
	}

	resp := make([]QuestionResponse, len(gen.Questions))
	for i, q := range gen.Questions {
		resp[i] = QuestionResponse{Question: q.Question, Answer: q.Answer}
	}

	w.Header().Set(contentSourceHeader, string(gen.Source))
	respondJSON(w, http.StatusOK, resp)
}
