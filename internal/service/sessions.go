// internal/service/sessions.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	interviewsession "github.com/mockprep/backend/internal/domain/interview_session"
	"github.com/mockprep/backend/internal/domain/question"
	"github.com/mockprep/backend/internal/scoring"
	"github.com/mockprep/backend/internal/store"
)

// Dashboard is the history view: scored sessions newest first plus their
// aggregate.
type Dashboard struct {
	scoring.Summary
	Sessions []interviewsession.ScoredSession
}

// SessionService saves practice runs and reads them back scored.
type SessionService struct {
	store            store.SessionStore
	anonymousHistory bool
	now              func() time.Time
	logger           *slog.Logger
}

// NewSessionService creates a SessionService. When anonymousHistory is set,
// callers without an identity read every stored session.
func NewSessionService(s store.SessionStore, anonymousHistory bool, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:            s,
		anonymousHistory: anonymousHistory,
		now:              time.Now,
		logger:           logger,
	}
}

// Save inserts a new session owned by userID. Every call is a new record.
func (ss *SessionService) Save(ctx context.Context, userID, topic string, data []question.AnsweredQuestion) (*interviewsession.InterviewSession, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	sess, err := interviewsession.New(topic, data, userID, ss.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	if err := ss.store.InsertSession(ctx, sess); err != nil {
		ss.logger.Error("failed to save session", "user_id", userID, "topic", topic, "error", err)
		return nil, fmt.Errorf("save session: %w", err)
	}

	ss.logger.Info("session saved",
		"session_id", sess.ID,
		"user_id", userID,
		"topic", sess.Topic,
		"questions", len(sess.SessionData),
	)
	return sess, nil
}

// List returns the caller's sessions scored, newest first. Store failures
// are logged and yield an empty list.
func (ss *SessionService) List(ctx context.Context, userID string) []interviewsession.ScoredSession {
	if userID == "" && !ss.anonymousHistory {
		return []interviewsession.ScoredSession{}
	}

	sessions, err := ss.store.ListSessions(ctx, userID)
	if err != nil {
		ss.logger.Error("failed to list sessions", "user_id", userID, "error", err)
		return []interviewsession.ScoredSession{}
	}

	return lo.Map(sessions, func(s *interviewsession.InterviewSession, _ int) interviewsession.ScoredSession {
		return s.Scored()
	})
}

// Dashboard returns the caller's scored history with total and average.
func (ss *SessionService) Dashboard(ctx context.Context, userID string) Dashboard {
	sessions := ss.List(ctx, userID)
	scores := lo.Map(sessions, func(s interviewsession.ScoredSession, _ int) int {
		return s.Score
	})
	return Dashboard{
		Summary:  scoring.Summarize(scores),
		Sessions: sessions,
	}
}
