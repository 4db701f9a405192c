package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ivr-server/internal/observability"
	"ivr-server/internal/store"
)

// Branch tells the contact flow which path to take next.
type Branch string

const (
	BranchEnrollFromScratch Branch = "enrollfromscratch"
	BranchVerified          Branch = "verified"
	BranchFailedVerified    Branch = "failedverified"
	BranchEnroll            Branch = "enroll"
	BranchVerify            Branch = "verify"
)

// requiredEnrollments mirrors the call flow's completion threshold
const requiredEnrollments = 3

var (
	ErrMissingPhoneNumber      = errors.New("missing customer phone number")
	ErrSessionStoreUnavailable = errors.New("session store unavailable")
	ErrBiometricsUnavailable   = errors.New("voice biometrics unavailable")
)

type DispatchProcessor struct {
	store     SessionStore
	users     UserCreator
	freshness time.Duration
	logger    *observability.Logger
	now       func() time.Time
}

func New(store SessionStore, users UserCreator, freshness time.Duration, logger *observability.Logger) *DispatchProcessor {
	return &DispatchProcessor{
		store:     store,
		users:     users,
		freshness: freshness,
		logger:    logger,
		now:       time.Now,
	}
}

// Dispatch decides the next branch for an inbound contact and primes the caller's
// session flags so the webhook call flow knows what to do when the call arrives.
func (p *DispatchProcessor) Dispatch(ctx context.Context, phoneNumber string) (Branch, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return "", ErrMissingPhoneNumber
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "phone_number", Value: phoneNumber})

	session, err := p.store.GetSession(ctx, phoneNumber)
	if errors.Is(err, store.ErrNotFound) {
		return p.enrollFromScratch(ctx, phoneNumber)
	}
	if err != nil {
		return "", p.storeFailure(ctx, "failed to get session", err)
	}

	branch, err := p.decide(ctx, session)
	if err != nil {
		return "", err
	}
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "branch", Value: string(branch)},
	), "dispatched caller")
	return branch, nil
}

func (p *DispatchProcessor) decide(ctx context.Context, session store.Session) (Branch, error) {
	info := session.Info
	phone := session.PhoneNumber

	switch {
	case info.Verified && p.isFresh(ctx, info.AuthTime):
		// a verification is good for one dispatch only
		if err := p.store.ClearVerified(ctx, phone); err != nil {
			return "", p.storeFailure(ctx, "failed to clear verified", err)
		}
		return BranchVerified, nil

	case info.Verified:
		if err := p.store.RequireReverification(ctx, phone); err != nil {
			return "", p.storeFailure(ctx, "failed to require reverification", err)
		}
		return BranchFailedVerified, nil

	case info.NumEnrollments < requiredEnrollments:
		if err := p.store.SetFlowFlags(ctx, phone, false, true); err != nil {
			return "", p.storeFailure(ctx, "failed to set enrolling", err)
		}
		return BranchEnroll, nil

	default:
		if err := p.store.SetFlowFlags(ctx, phone, true, false); err != nil {
			return "", p.storeFailure(ctx, "failed to set verifying", err)
		}
		return BranchVerify, nil
	}
}

func (p *DispatchProcessor) enrollFromScratch(ctx context.Context, phoneNumber string) (Branch, error) {
	userID, err := p.users.CreateUser(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to create biometrics user", err)
		return "", fmt.Errorf("%w: %v", ErrBiometricsUnavailable, err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	_, err = p.store.CreateSession(ctx, store.CreateSessionParams{
		PhoneNumber: phoneNumber,
		UserID:      userID,
		Enrolling:   true,
		AuthTime:    p.now(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// another contact for the same caller created the row first
		p.logger.Warn(ctx, "session created concurrently, dispatching existing session")
		session, err := p.store.GetSession(ctx, phoneNumber)
		if err != nil {
			return "", p.storeFailure(ctx, "failed to reload session", err)
		}
		return p.decide(ctx, session)
	}
	if err != nil {
		return "", p.storeFailure(ctx, "failed to create session", err)
	}

	p.logger.Info(ctx, "enrolling new caller from scratch")
	return BranchEnrollFromScratch, nil
}

// isFresh reports whether authTime lies within the freshness window. An
// unparseable timestamp counts as stale.
func (p *DispatchProcessor) isFresh(ctx context.Context, authTime string) bool {
	t, err := store.ParseAuthTime(authTime)
	if err != nil {
		p.logger.InfoWithError(ctx, "failed to parse auth time", err)
		return false
	}
	return p.now().Sub(t) < p.freshness
}

func (p *DispatchProcessor) storeFailure(ctx context.Context, msg string, err error) error {
	p.logger.Error(ctx, msg, err)
	return fmt.Errorf("%w: %s: %v", ErrSessionStoreUnavailable, msg, err)
}
