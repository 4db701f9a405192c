package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ivr-server/internal/observability"
)

// Session is the per-caller record, keyed by phone number.
type Session struct {
	PhoneNumber string      `json:"phoneNumber"`
	Info        SessionInfo `json:"info"`
}

// SessionInfo holds the enrollment and verification progress of a caller.
type SessionInfo struct {
	UserID         string `json:"userId"`
	Verifying      bool   `json:"verifying"`
	Enrolling      bool   `json:"enrolling"`
	NumEnrollments int    `json:"numEnrollments"`
	Verified       bool   `json:"verified"`
	AuthTime       string `json:"authTime"`
}

// CreateSessionParams represents parameters for creating a session
type CreateSessionParams struct {
	PhoneNumber string
	UserID      string
	Verifying   bool
	Enrolling   bool
	AuthTime    time.Time
}

// FormatAuthTime renders t the way authTime is persisted (UTC, RFC 3339).
func FormatAuthTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseAuthTime parses a persisted authTime.
func ParseAuthTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

type sessionRow struct {
	PhoneNumber    string    `db:"phone_number"`
	UserID         string    `db:"user_id"`
	Verifying      bool      `db:"verifying"`
	Enrolling      bool      `db:"enrolling"`
	NumEnrollments int       `db:"num_enrollments"`
	Verified       bool      `db:"verified"`
	AuthTime       string    `db:"auth_time"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r sessionRow) toSession() Session {
	return Session{
		PhoneNumber: r.PhoneNumber,
		Info: SessionInfo{
			UserID:         r.UserID,
			Verifying:      r.Verifying,
			Enrolling:      r.Enrolling,
			NumEnrollments: r.NumEnrollments,
			Verified:       r.Verified,
			AuthTime:       r.AuthTime,
		},
	}
}

// Session SQL queries
const (
	sqlGetSession = `
		SELECT phone_number, user_id, verifying, enrolling, num_enrollments, verified, auth_time, created_at, updated_at
		FROM call_sessions
		WHERE phone_number = $1
	`

	sqlCreateSession = `
		INSERT INTO call_sessions (phone_number, user_id, verifying, enrolling, num_enrollments, verified, auth_time)
		VALUES ($1, $2, $3, $4, 0, FALSE, $5)
		ON CONFLICT (phone_number) DO NOTHING
	`

	sqlSetNumEnrollments = `
		UPDATE call_sessions
		SET num_enrollments = $3, updated_at = NOW()
		WHERE phone_number = $1 AND num_enrollments = $2
	`

	sqlSetSuccessfulAuthentication = `
		UPDATE call_sessions
		SET verified = TRUE, auth_time = $2, updated_at = NOW()
		WHERE phone_number = $1
	`

	sqlSetFlowFlags = `
		UPDATE call_sessions
		SET verifying = $2, enrolling = $3, updated_at = NOW()
		WHERE phone_number = $1
	`

	sqlClearVerified = `
		UPDATE call_sessions
		SET verified = FALSE, updated_at = NOW()
		WHERE phone_number = $1
	`

	sqlRequireReverification = `
		UPDATE call_sessions
		SET verified = FALSE, verifying = TRUE, updated_at = NOW()
		WHERE phone_number = $1
	`

	sqlResetSession = `
		UPDATE call_sessions
		SET verifying = FALSE, enrolling = FALSE, num_enrollments = 0, verified = FALSE, updated_at = NOW()
		WHERE phone_number = $1
	`

	sqlSessionExists = `
		SELECT EXISTS (SELECT 1 FROM call_sessions WHERE phone_number = $1)
	`
)

// GetSession retrieves the session for a phone number
func (s *Store) GetSession(ctx context.Context, phoneNumber string) (Session, error) {
	var row sessionRow
	err := s.db.GetContext(ctx, &row, sqlGetSession, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return row.toSession(), nil
}

// CreateSession inserts a new session with a zero enrollment counter
func (s *Store) CreateSession(ctx context.Context, params CreateSessionParams) (Session, error) {
	authTime := ""
	if !params.AuthTime.IsZero() {
		authTime = FormatAuthTime(params.AuthTime)
	}

	res, err := s.db.ExecContext(ctx, sqlCreateSession,
		params.PhoneNumber, params.UserID, params.Verifying, params.Enrolling, authTime)
	if err != nil {
		return Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Session{}, ErrAlreadyExists
	}

	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "phone_number", Value: params.PhoneNumber},
	), "created call session")

	return s.GetSession(ctx, params.PhoneNumber)
}

// SetNumEnrollments sets the enrollment counter, but only if it still holds expectedPrior.
func (s *Store) SetNumEnrollments(ctx context.Context, phoneNumber string, expectedPrior, numEnrollments int) error {
	res, err := s.db.ExecContext(ctx, sqlSetNumEnrollments, phoneNumber, expectedPrior, numEnrollments)
	if err != nil {
		return fmt.Errorf("failed to set number of enrollments: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set number of enrollments: %w", err)
	}
	if n > 0 {
		return nil
	}

	// nothing matched: either the row is gone or the counter moved under us
	var exists bool
	if err := s.db.GetContext(ctx, &exists, sqlSessionExists, phoneNumber); err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrVersionConflict
}

// SetSuccessfulAuthentication marks the caller verified at authTime
func (s *Store) SetSuccessfulAuthentication(ctx context.Context, phoneNumber string, authTime time.Time) error {
	return s.execSessionUpdate(ctx, "set successful authentication", sqlSetSuccessfulAuthentication,
		phoneNumber, FormatAuthTime(authTime))
}

// ClearFlowFlags sets both verifying and enrolling to false
func (s *Store) ClearFlowFlags(ctx context.Context, phoneNumber string) error {
	return s.SetFlowFlags(ctx, phoneNumber, false, false)
}

// SetFlowFlags sets the verifying and enrolling flags
func (s *Store) SetFlowFlags(ctx context.Context, phoneNumber string, verifying, enrolling bool) error {
	return s.execSessionUpdate(ctx, "set flow flags", sqlSetFlowFlags, phoneNumber, verifying, enrolling)
}

// ClearVerified consumes a successful verification
func (s *Store) ClearVerified(ctx context.Context, phoneNumber string) error {
	return s.execSessionUpdate(ctx, "clear verified", sqlClearVerified, phoneNumber)
}

// RequireReverification drops a stale verification and asks for a new one
func (s *Store) RequireReverification(ctx context.Context, phoneNumber string) error {
	return s.execSessionUpdate(ctx, "require reverification", sqlRequireReverification, phoneNumber)
}

// ResetSession clears flags, counter and verification, keeping the user id
func (s *Store) ResetSession(ctx context.Context, phoneNumber string) error {
	return s.execSessionUpdate(ctx, "reset session", sqlResetSession, phoneNumber)
}

func (s *Store) execSessionUpdate(ctx context.Context, op, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
