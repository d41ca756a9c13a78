package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mockprep/backend/internal/api"
	"github.com/mockprep/backend/internal/auth"
	"github.com/mockprep/backend/internal/canned"
	"github.com/mockprep/backend/internal/llm"
	"github.com/mockprep/backend/internal/retry"
	"github.com/mockprep/backend/internal/service"
	"github.com/mockprep/backend/internal/store"
)

type reply struct {
	text string
	err  error
}

// scriptedLLM replays replies in order, repeating the last one.
type scriptedLLM struct {
	mu      sync.Mutex
	replies []reply
	calls   int
}

func (s *scriptedLLM) Complete(context.Context, string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.replies[min(s.calls, len(s.replies)-1)]
	s.calls++
	return r.text, r.err
}

type testServer struct {
	handler  http.Handler
	verifier *auth.Verifier
	store    *store.SQLiteStore
}

type serverOptions struct {
	llm    *scriptedLLM
	policy service.Policy
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "api.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	rp := retry.Default()
	rp.Sleep = func(context.Context, time.Duration) error { return nil }

	policy := opts.policy
	if policy == "" {
		policy = service.PolicyResilient
	}

	// A nil *scriptedLLM must stay a nil interface.
	var completer llm.Completer
	if opts.llm != nil {
		completer = opts.llm
	}

	h := api.NewHandler(
		service.NewGenerationService(completer, canned.Default(), policy, rp, logger),
		service.NewFeedbackService(completer, rp, logger),
		service.NewSessionService(st, true, logger),
		logger,
	)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, h)

	verifier := auth.NewVerifier("test-secret")
	return &testServer{
		handler:  api.CORS("*")(api.Identity(verifier)(mux)),
		verifier: verifier,
		store:    st,
	}
}

func (s *testServer) token(t *testing.T, userID string) string {
	t.Helper()
	tok, err := s.verifier.Issue(userID, time.Hour)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
