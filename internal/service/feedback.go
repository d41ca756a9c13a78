// internal/service/feedback.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mockprep/backend/internal/domain/question"
	"github.com/mockprep/backend/internal/llm"
	"github.com/mockprep/backend/internal/retry"
)

// Answers longer than this (trimmed, in characters) pass the offline check.
const heuristicMinLength = 20

const (
	heuristicPass = "Automatic grading is unavailable right now. Your answer looks substantial; compare it with the model answer to check the key points."
	heuristicFail = "Automatic grading is unavailable right now. Try adding more detail to your answer and compare it with the model answer."
)

// FeedbackRequest is one answer to grade.
type FeedbackRequest struct {
	Question      string
	CorrectAnswer string
	UserAnswer    string
}

// Validate reports the first missing field.
func (r FeedbackRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.Question) == "":
		return fmt.Errorf("%w: question", ErrMissingField)
	case strings.TrimSpace(r.CorrectAnswer) == "":
		return fmt.Errorf("%w: correctAnswer", ErrMissingField)
	case strings.TrimSpace(r.UserAnswer) == "":
		return fmt.Errorf("%w: userAnswer", ErrMissingField)
	}
	return nil
}

// FeedbackService grades a user's answer against the model answer. It
// never fails once the request is valid: a verdict the model did not
// produce is reported as unknown, and an unreachable model falls back to a
// length check.
type FeedbackService struct {
	llm    llm.Completer
	retry  retry.Policy
	logger *slog.Logger
}

func NewFeedbackService(c llm.Completer, rp retry.Policy, logger *slog.Logger) *FeedbackService {
	return &FeedbackService{llm: c, retry: rp, logger: logger}
}

func (fs *FeedbackService) Evaluate(ctx context.Context, req FeedbackRequest) (question.Verdict, error) {
	if err := req.Validate(); err != nil {
		return question.Verdict{}, err
	}

	if fs.llm == nil {
		return fs.heuristic(req.UserAnswer, ErrGenerationUnavailable), nil
	}

	p := fs.retry
	p.OnRetry = func(attempt int, err error, delay time.Duration) {
		fs.logger.Warn("feedback service overloaded, retrying",
			"attempt", attempt,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
	}

	text, err := retry.Do(ctx, p, llm.IsOverloaded, func(ctx context.Context) (string, error) {
		return fs.llm.Complete(ctx, llm.FeedbackPrompt(req.Question, req.CorrectAnswer, req.UserAnswer))
	})
	if err != nil {
		return fs.heuristic(req.UserAnswer, err), nil
	}

	v, err := llm.DecodeVerdict(text)
	if err != nil {
		fs.logger.Warn("unparseable verdict, returning raw feedback", "error", err)
		return question.Verdict{Feedback: strings.TrimSpace(text), IsCorrectEnough: nil}, nil
	}
	return v, nil
}

// heuristic grades on answer length alone.
func (fs *FeedbackService) heuristic(userAnswer string, cause error) question.Verdict {
	fs.logger.Warn("feedback service failed, using length heuristic", "error", cause)
	if utf8.RuneCountInString(strings.TrimSpace(userAnswer)) > heuristicMinLength {
		return question.Verdict{Feedback: heuristicPass, IsCorrectEnough: question.Bool(true)}
	}
	return question.Verdict{Feedback: heuristicFail, IsCorrectEnough: question.Bool(false)}
}
