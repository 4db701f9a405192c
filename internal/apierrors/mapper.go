package apierrors

import (
	"errors"

	callflowProcessor "ivr-server/internal/callflow/processor"
	dispatchProcessor "ivr-server/internal/dispatch/processor"
	"ivr-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map call flow processor errors
	case errors.Is(err, callflowProcessor.ErrSessionStoreUnavailable):
		return ServiceUnavailable(CodeSessionStoreUnavailable, "Session store is temporarily unavailable. Please try again later.", err)

	case errors.Is(err, callflowProcessor.ErrInvalidTransition):
		return InternalError(err)

	// Map dispatch processor errors
	case errors.Is(err, dispatchProcessor.ErrMissingPhoneNumber):
		return BadRequest(CodeInvalidInput, "Customer phone number is required")

	case errors.Is(err, dispatchProcessor.ErrSessionStoreUnavailable):
		return ServiceUnavailable(CodeSessionStoreUnavailable, "Session store is temporarily unavailable. Please try again later.", err)

	case errors.Is(err, dispatchProcessor.ErrBiometricsUnavailable):
		return ServiceUnavailable(CodeBiometricsUnavailable, "Voice biometrics service is temporarily unavailable. Please try again later.", err)

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Session not found")

	default:
		return InternalError(err)
	}
}
