package store

import (
	"context"
	"time"
)

// Storer defines all public session operations, implemented by the Postgres
// Store and by boltstore.Store
type Storer interface {
	GetSession(ctx context.Context, phoneNumber string) (Session, error)
	CreateSession(ctx context.Context, params CreateSessionParams) (Session, error)

	// Call flow
	SetNumEnrollments(ctx context.Context, phoneNumber string, expectedPrior, numEnrollments int) error
	SetSuccessfulAuthentication(ctx context.Context, phoneNumber string, authTime time.Time) error
	ClearFlowFlags(ctx context.Context, phoneNumber string) error

	// Dispatch
	SetFlowFlags(ctx context.Context, phoneNumber string, verifying, enrolling bool) error
	ClearVerified(ctx context.Context, phoneNumber string) error
	RequireReverification(ctx context.Context, phoneNumber string) error

	// Operator tooling
	ResetSession(ctx context.Context, phoneNumber string) error

	Close() error
}

var _ Storer = (*Store)(nil)
