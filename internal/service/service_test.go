package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	interviewsession "github.com/mockprep/backend/internal/domain/interview_session"
	"github.com/mockprep/backend/internal/llm"
	"github.com/mockprep/backend/internal/retry"
	"github.com/mockprep/backend/internal/store"
)

var errOverloaded = &llm.StatusError{Code: http.StatusServiceUnavailable, Body: "The model is overloaded."}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// noSleep is the default retry policy without the pauses.
func noSleep() retry.Policy {
	p := retry.Default()
	p.Sleep = func(context.Context, time.Duration) error { return nil }
	return p
}

type reply struct {
	text string
	err  error
}

// fakeCompleter replays scripted replies in order, repeating the last one.
type fakeCompleter struct {
	mu      sync.Mutex
	replies []reply
	prompts []string
}

func newFakeCompleter(replies ...reply) *fakeCompleter {
	return &fakeCompleter{replies: replies}
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.replies[min(len(f.prompts), len(f.replies)-1)]
	f.prompts = append(f.prompts, prompt)
	return r.text, r.err
}

func (f *fakeCompleter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// memStore is an in-memory SessionStore that counts writes.
type memStore struct {
	mu        sync.Mutex
	sessions  []*interviewsession.InterviewSession
	inserts   int
	lists     int
	insertErr error
	listErr   error
}

var _ store.SessionStore = (*memStore)(nil)

func (m *memStore) InsertSession(_ context.Context, s *interviewsession.InterviewSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserts++
	m.sessions = append(m.sessions, s)
	return nil
}

func (m *memStore) ListSessions(_ context.Context, userID string) ([]*interviewsession.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*interviewsession.InterviewSession
	for i := len(m.sessions) - 1; i >= 0; i-- {
		s := m.sessions[i]
		if userID == "" || (s.UserID != nil && *s.UserID == userID) {
			out = append(out, s)
		}
	}
	return out, nil
}

var errDiskFull = errors.New("disk full")
