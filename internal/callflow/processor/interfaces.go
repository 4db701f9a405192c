package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"ivr-server/internal/clients/voiceit"
	"ivr-server/internal/store"
)

// SessionStore defines the session operations required by CallFlowProcessor
type SessionStore interface {
	GetSession(ctx context.Context, phoneNumber string) (store.Session, error)
	SetNumEnrollments(ctx context.Context, phoneNumber string, expectedPrior, numEnrollments int) error
	SetSuccessfulAuthentication(ctx context.Context, phoneNumber string, authTime time.Time) error
	ClearFlowFlags(ctx context.Context, phoneNumber string) error
}

// VoiceBiometrics defines the biometrics operations required by CallFlowProcessor
type VoiceBiometrics interface {
	EnrollByURL(ctx context.Context, req voiceit.VoiceRequest) (voiceit.Result, error)
	VerifyByURL(ctx context.Context, req voiceit.VoiceRequest) (voiceit.Result, error)
}
