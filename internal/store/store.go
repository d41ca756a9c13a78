package store

import (
	"context"
	"errors"

	interviewsession "github.com/mockprep/backend/internal/domain/interview_session"
)

// ErrPersistence wraps every failure reported by the session store.
var ErrPersistence = errors.New("persistence failure")

// SessionStore persists completed interview sessions.
type SessionStore interface {
	InsertSession(ctx context.Context, s *interviewsession.InterviewSession) error
	// ListSessions returns sessions newest first. An empty userID lists
	// every session.
	ListSessions(ctx context.Context, userID string) ([]*interviewsession.InterviewSession, error)
}
