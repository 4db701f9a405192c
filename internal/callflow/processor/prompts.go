package processor

import "fmt"

const (
	promptSessionNotFound = "User phone number not found in the database."
	promptInvalidFlags    = "either both verifying/enrolling is set to true, or both is set to false. Please check previous function call on the Amazon Connect Side."
	promptEnrolled        = "We successfully enrolled you in our system. We will now transfer your call back to Amazon Connect to authenticate."
	promptVerified        = "Successfully verified. Transferring back to Connect as a verified user."

	// templates taking the configured phrase
	promptStatePhrase  = "Please state the phrase, %s, after the tone."
	promptRepeatPhrase = "Please repeat the phrase, %s, after the tone."
	promptEnrollFailed = "Last enrollment failed. Please repeat the phrase, %s, after the tone."
	promptVerifyFailed = "Failed to verify. Please try again by stating the phrase, %s, after the tone."
)

func (p *CallFlowProcessor) phrasePrompt(template string) string {
	return fmt.Sprintf(template, p.config.Phrase)
}
