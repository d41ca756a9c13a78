// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	interviewsession "github.com/mockprep/backend/internal/domain/interview_session"
	"github.com/mockprep/backend/internal/domain/question"
)

const schema = `
CREATE TABLE IF NOT EXISTS interview_sessions (
    id TEXT PRIMARY KEY,
    topic TEXT NOT NULL,
    session_data TEXT NOT NULL,
    user_id TEXT,
    created_at TEXT NOT NULL
);
`

// Fixed width so that created_at sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSQLite(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrPersistence, dbPath, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: apply schema: %v", ErrPersistence, err)
	}

	// Databases created before sessions were scoped to users lack user_id.
	if err := addColumnIfNotExists(db, "interview_sessions", "user_id", "TEXT"); err != nil {
		logger.Warn("could not add user_id column", "error", err)
	}
	_, _ = db.Exec("CREATE INDEX IF NOT EXISTS idx_interview_sessions_created_at ON interview_sessions(created_at)")

	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) InsertSession(ctx context.Context, sess *interviewsession.InterviewSession) error {
	data, err := json.Marshal(sess.SessionData)
	if err != nil {
		return fmt.Errorf("%w: encode session data: %v", ErrPersistence, err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO interview_sessions (id, topic, session_data, user_id, created_at) VALUES (?, ?, ?, ?, ?)",
		sess.ID, sess.Topic, string(data), sess.UserID, sess.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("%w: insert session: %v", ErrPersistence, err)
	}
	return nil
}

func (s *SQLiteStore) ListSessions(ctx context.Context, userID string) ([]*interviewsession.InterviewSession, error) {
	if userID == "" {
		return s.listAll(ctx)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, session_data, user_id, created_at FROM interview_sessions
		 WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`, userID,
	)
	if err != nil {
		if isMissingUserColumn(err) {
			s.logger.Warn("user_id column missing, listing all sessions", "error", err)
			return s.listAll(ctx)
		}
		return nil, fmt.Errorf("%w: list sessions: %v", ErrPersistence, err)
	}
	return scanSessions(rows, true)
}

// listAll reads every session. It selects no user_id so that it also
// works against the legacy table.
func (s *SQLiteStore) listAll(ctx context.Context) ([]*interviewsession.InterviewSession, error) {
	withUser := true
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, topic, session_data, user_id, created_at FROM interview_sessions ORDER BY created_at DESC, rowid DESC",
	)
	if err != nil && isMissingUserColumn(err) {
		withUser = false
		rows, err = s.db.QueryContext(ctx,
			"SELECT id, topic, session_data, NULL, created_at FROM interview_sessions ORDER BY created_at DESC, rowid DESC",
		)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list sessions: %v", ErrPersistence, err)
	}
	return scanSessions(rows, withUser)
}

func scanSessions(rows *sql.Rows, withUser bool) ([]*interviewsession.InterviewSession, error) {
	defer rows.Close()

	sessions := []*interviewsession.InterviewSession{}
	for rows.Next() {
		var (
			sess      interviewsession.InterviewSession
			data      string
			userID    sql.NullString
			createdAt string
		)
		if err := rows.Scan(&sess.ID, &sess.Topic, &data, &userID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scan session: %v", ErrPersistence, err)
		}

		var items []question.AnsweredQuestion
		if err := json.Unmarshal([]byte(data), &items); err != nil {
			return nil, fmt.Errorf("%w: decode session %s: %v", ErrPersistence, sess.ID, err)
		}
		sess.SessionData = items

		if withUser && userID.Valid {
			owner := userID.String
			sess.UserID = &owner
		}

		t, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			t, err = time.Parse(time.RFC3339Nano, createdAt)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parse created_at of %s: %v", ErrPersistence, sess.ID, err)
		}
		sess.CreatedAt = t.UTC()

		sessions = append(sessions, &sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate sessions: %v", ErrPersistence, err)
	}
	return sessions, nil
}

func addColumnIfNotExists(db *sql.DB, table, column, definition string) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return err
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	return err
}

func isMissingUserColumn(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such column") && strings.Contains(msg, "user_id")
}
