package processor

import (
	"context"
	"errors"
	"fmt"

	"ivr-server/internal/observability"
	"ivr-server/internal/store"
)

// processEnroll submits one enrollment recording. The counter is persisted only
// after the provider accepts the recording, and only if no other leg moved it.
func (p *CallFlowProcessor) processEnroll(ctx context.Context, session store.Session, userID, recordingURL string) (Reply, error) {
	prior := session.Info.NumEnrollments
	ctx = observability.WithFields(ctx, observability.Field{Key: "num_enrollments", Value: prior})

	if prior >= MaxEnrollments {
		// late duplicate of the final recording
		p.logger.Warn(ctx, "enrollment already complete, transferring")
		return p.transfer(promptEnrolled), nil
	}

	if recordingURL == "" {
		p.logger.Warn(ctx, "enrollment callback without a recording url")
		return p.promptRecording(StateAwaitingEnrollAudio, p.phrasePrompt(promptEnrollFailed), userID), nil
	}

	result, err := p.biometrics.EnrollByURL(ctx, p.voiceRequest(userID, recordingURL))
	if err != nil || !result.EnrollmentSucceeded() {
		if err == nil {
			err = fmt.Errorf("enrollment rejected: %s", result.ResponseCode)
		}
		p.logger.InfoWithError(ctx, "enrollment submission failed", err)
		return p.promptRecording(StateAwaitingEnrollAudio, p.phrasePrompt(promptEnrollFailed), userID), nil
	}

	next := prior + 1
	if err := p.store.SetNumEnrollments(ctx, session.PhoneNumber, prior, next); err != nil {
		if !errors.Is(err, store.ErrVersionConflict) {
			return Reply{}, p.storeFailure(ctx, "failed to set number of enrollments", err)
		}
		// Another leg for the same caller got there first; answer from its count.
		p.logger.Warn(ctx, "enrollment counter changed concurrently")
		fresh, err := p.store.GetSession(ctx, session.PhoneNumber)
		if err != nil {
			return Reply{}, p.storeFailure(ctx, "failed to reload session", err)
		}
		next = fresh.Info.NumEnrollments
	}

	if next >= MaxEnrollments {
		p.logger.Info(ctx, "enrollment complete")
		return p.transfer(promptEnrolled), nil
	}
	return p.promptRecording(StateAwaitingEnrollAudio, p.phrasePrompt(promptRepeatPhrase), userID), nil
}
