package interviewsession

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mockprep/backend/internal/domain/question"
	"github.com/mockprep/backend/internal/id"
	"github.com/mockprep/backend/internal/scoring"
)

var (
	ErrTopicRequired       = errors.New("topic is required")
	ErrSessionDataRequired = errors.New("sessionData must contain at least one answered question")
)

// InterviewSession is one saved practice run. It is never updated after
// insert: saving the same run again creates another session.
type InterviewSession struct {
	ID          string
	Topic       string
	SessionData []question.AnsweredQuestion
	UserID      *string // nil for rows written before sessions were scoped to users
	CreatedAt   time.Time
}

// New validates the payload and creates a session owned by userID.
func New(topic string, data []question.AnsweredQuestion, userID string, now time.Time) (*InterviewSession, error) {
	if err := Validate(topic, data); err != nil {
		return nil, err
	}

	var owner *string
	if userID != "" {
		owner = &userID
	}

	return &InterviewSession{
		ID:          id.New(),
		Topic:       topic,
		SessionData: data,
		UserID:      owner,
		CreatedAt:   now.UTC(),
	}, nil
}

// Validate checks that a save payload carries a topic and at least one
// question-shaped record.
func Validate(topic string, data []question.AnsweredQuestion) error {
	if strings.TrimSpace(topic) == "" {
		return ErrTopicRequired
	}
	if len(data) == 0 {
		return ErrSessionDataRequired
	}
	for i, item := range data {
		if strings.TrimSpace(item.Question) == "" {
			return fmt.Errorf("sessionData[%d]: question is required", i)
		}
	}
	return nil
}

// ScoredSession is a session with its score computed at read time.
type ScoredSession struct {
	InterviewSession
	Score     int
	Breakdown scoring.Breakdown
}

// Scored derives the score for s. The result is never persisted.
func (s *InterviewSession) Scored() ScoredSession {
	breakdown := scoring.Detailed(s.SessionData)
	return ScoredSession{
		InterviewSession: *s,
		Score:            breakdown.Percentage,
		Breakdown:        breakdown,
	}
}
