package processor

import (
	"context"
	"fmt"

	"ivr-server/internal/store"
)

func (p *CallFlowProcessor) processVerify(ctx context.Context, session store.Session, userID, recordingURL string) (Reply, error) {
	if recordingURL == "" {
		p.logger.Warn(ctx, "verification callback without a recording url")
		return p.promptRecording(StateAwaitingVerifyAudio, p.phrasePrompt(promptVerifyFailed), userID), nil
	}

	result, err := p.biometrics.VerifyByURL(ctx, p.voiceRequest(userID, recordingURL))
	if err != nil || !result.VerificationSucceeded() {
		if err == nil {
			err = fmt.Errorf("verification rejected: status=%d code=%s", result.Status, result.ResponseCode)
		}
		p.logger.InfoWithError(ctx, "verification failed", err)
		return p.promptRecording(StateAwaitingVerifyAudio, p.phrasePrompt(promptVerifyFailed), userID), nil
	}

	if err := p.store.SetSuccessfulAuthentication(ctx, session.PhoneNumber, p.now().UTC()); err != nil {
		return Reply{}, p.storeFailure(ctx, "failed to set successful authentication", err)
	}

	p.logger.Info(ctx, "caller verified")
	return p.transfer(promptVerified), nil
}
