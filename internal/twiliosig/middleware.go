package twiliosig

import (
	"ivr-server/internal/apierrors"
	"ivr-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/client"
)

// SignatureHeader carries Twilio's HMAC of the request URL and form
const SignatureHeader = "X-Twilio-Signature"

// Validator checks X-Twilio-Signature on webhook requests
type Validator struct {
	validator     *client.RequestValidator
	publicBaseURL string
	logger        *observability.Logger
}

// New returns a Validator, or nil when authToken is empty (validation disabled).
// publicBaseURL is the externally visible scheme://host the webhooks are configured with;
// when empty it is rebuilt from the request.
func New(authToken, publicBaseURL string, logger *observability.Logger) *Validator {
	if authToken == "" {
		return nil
	}
	v := client.NewRequestValidator(authToken)
	return &Validator{
		validator:     &v,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// IsEnabled reports whether signatures are checked
func (v *Validator) IsEnabled() bool {
	return v != nil && v.validator != nil
}

// Middleware rejects POSTs whose signature does not match with a 403
func (v *Validator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !v.IsEnabled() || c.Request.Method != "POST" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		signature := c.GetHeader(SignatureHeader)
		if signature == "" {
			v.logger.Warn(ctx, "webhook without twilio signature")
			apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodeInvalidSignature, "Invalid request signature"))
			return
		}

		if !v.validator.Validate(v.requestURL(c), formParams(c), signature) {
			v.logger.Warn(ctx, "webhook with invalid twilio signature")
			apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodeInvalidSignature, "Invalid request signature"))
			return
		}
		c.Next()
	}
}

func (v *Validator) requestURL(c *gin.Context) string {
	base := v.publicBaseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		base = scheme + "://" + c.Request.Host
	}
	return base + c.Request.URL.RequestURI()
}

// formParams flattens the POST form; Twilio never repeats a webhook parameter.
func formParams(c *gin.Context) map[string]string {
	params := map[string]string{}
	if err := c.Request.ParseForm(); err != nil {
		return params
	}
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
