package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"ivr-server/internal/store"
)

// SessionStore defines the session operations required by DispatchProcessor
type SessionStore interface {
	GetSession(ctx context.Context, phoneNumber string) (store.Session, error)
	CreateSession(ctx context.Context, params store.CreateSessionParams) (store.Session, error)
	SetFlowFlags(ctx context.Context, phoneNumber string, verifying, enrolling bool) error
	ClearVerified(ctx context.Context, phoneNumber string) error
	RequireReverification(ctx context.Context, phoneNumber string) error
}

// UserCreator registers new callers with the biometrics provider
type UserCreator interface {
	CreateUser(ctx context.Context) (string, error)
}
