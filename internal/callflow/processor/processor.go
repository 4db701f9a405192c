package processor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"ivr-server/internal/clients/voiceit"
	"ivr-server/internal/observability"
	"ivr-server/internal/store"
)

// MaxEnrollments is the number of accepted recordings that completes enrollment.
const MaxEnrollments = 3

// TrimDoNotTrim keeps leading and trailing silence in recordings.
const TrimDoNotTrim = "do-not-trim"

var (
	ErrSessionStoreUnavailable = errors.New("session store unavailable")
	ErrInvalidTransition       = errors.New("invalid call flow transition")
)

// Config holds the call flow settings
type Config struct {
	AppName             string
	Phrase              string
	ContentLanguage     string
	CallbackPhoneNumber string
	RecordMaxLength     int
}

// Event is one inbound webhook invocation.
type Event struct {
	PhoneNumber  string
	Param        string
	UserID       string
	RecordingURL string
}

// RecordRequest asks the provider to record the caller and post back to Action.
type RecordRequest struct {
	Action    string
	MaxLength int
	Trim      string
}

// Reply is the next prompt/action for the provider.
type Reply struct {
	State      State
	Say        string
	Record     *RecordRequest
	DialNumber string
}

// CallFlowProcessor drives the enrollment/verification dialogue
type CallFlowProcessor struct {
	store      SessionStore
	biometrics VoiceBiometrics
	config     Config
	logger     *observability.Logger
	now        func() time.Time
}

// New creates a new CallFlowProcessor
func New(store SessionStore, biometrics VoiceBiometrics, config Config, logger *observability.Logger) *CallFlowProcessor {
	if config.RecordMaxLength <= 0 {
		config.RecordMaxLength = 5
	}
	return &CallFlowProcessor{
		store:      store,
		biometrics: biometrics,
		config:     config,
		logger:     logger,
		now:        time.Now,
	}
}

// HandleEvent loads the caller's session, runs the step selected by the event and
// returns the reply to render. Only session store failures are returned as errors.
func (p *CallFlowProcessor) HandleEvent(ctx context.Context, event Event) (Reply, error) {
	from := entryState(event.Param)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "phone_number", Value: event.PhoneNumber},
		observability.Field{Key: "call_state", Value: from.String()},
	)

	reply, err := p.step(ctx, from, event)
	if err != nil {
		return Reply{}, err
	}

	if !CanTransition(from, reply.State) {
		err := fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, reply.State)
		p.logger.Error(ctx, "call flow produced an invalid transition", err)
		return Reply{}, err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "next_state", Value: reply.State.String()},
	), "call flow step completed")
	return reply, nil
}

func (p *CallFlowProcessor) step(ctx context.Context, from State, event Event) (Reply, error) {
	if strings.TrimSpace(event.PhoneNumber) == "" {
		p.logger.Warn(ctx, "webhook without caller phone number")
		return p.sessionNotFound(), nil
	}

	session, err := p.store.GetSession(ctx, event.PhoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "no session for caller")
			return p.sessionNotFound(), nil
		}
		return Reply{}, p.storeFailure(ctx, "failed to get session", err)
	}
	if session.PhoneNumber == "" {
		p.logger.Warn(ctx, "session has an empty phone number")
		return p.sessionNotFound(), nil
	}

	userID := event.UserID
	if userID == "" {
		userID = session.Info.UserID
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	switch from {
	case StateProcessingEnroll:
		return p.processEnroll(ctx, session, userID, event.RecordingURL)
	case StateProcessingVerify:
		return p.processVerify(ctx, session, userID, event.RecordingURL)
	default:
		return p.dispatch(ctx, session)
	}
}

// dispatch starts the flow requested through the verifying/enrolling flags.
func (p *CallFlowProcessor) dispatch(ctx context.Context, session store.Session) (Reply, error) {
	info := session.Info
	if info.Verifying == info.Enrolling {
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "verifying", Value: info.Verifying},
			observability.Field{Key: "enrolling", Value: info.Enrolling},
		), "invalid flow flag combination")
		return Reply{State: StateEnded, Say: promptInvalidFlags}, nil
	}

	// Clear before prompting so the processenroll/processverify round-trips
	// are never mistaken for a fresh dispatch.
	if err := p.store.ClearFlowFlags(ctx, session.PhoneNumber); err != nil {
		return Reply{}, p.storeFailure(ctx, "failed to clear flow flags", err)
	}

	next := StateAwaitingVerifyAudio
	if info.Enrolling {
		next = StateAwaitingEnrollAudio
	}
	return p.promptRecording(next, p.phrasePrompt(promptStatePhrase), info.UserID), nil
}

func (p *CallFlowProcessor) promptRecording(next State, say, userID string) Reply {
	return Reply{
		State: next,
		Say:   say,
		Record: &RecordRequest{
			Action:    p.callbackAction(awaitingParam(next), userID),
			MaxLength: p.config.RecordMaxLength,
			Trim:      TrimDoNotTrim,
		},
	}
}

func (p *CallFlowProcessor) transfer(say string) Reply {
	return Reply{State: StateTransferred, Say: say, DialNumber: p.config.CallbackPhoneNumber}
}

func (p *CallFlowProcessor) sessionNotFound() Reply {
	return Reply{State: StateEnded, Say: promptSessionNotFound}
}

// callbackAction is relative to the webhook endpoint, as the provider resolves it against the request URL.
func (p *CallFlowProcessor) callbackAction(param, userID string) string {
	values := url.Values{}
	values.Set("param", param)
	values.Set("userId", userID)
	return p.config.AppName + "?" + values.Encode()
}

func (p *CallFlowProcessor) voiceRequest(userID, recordingURL string) voiceit.VoiceRequest {
	return voiceit.VoiceRequest{
		UserID:   userID,
		Language: p.config.ContentLanguage,
		Phrase:   p.config.Phrase,
		AudioURL: recordingURL + ".wav",
	}
}

func (p *CallFlowProcessor) storeFailure(ctx context.Context, msg string, err error) error {
	p.logger.Error(ctx, msg, err)
	return fmt.Errorf("%w: %s: %v", ErrSessionStoreUnavailable, msg, err)
}
