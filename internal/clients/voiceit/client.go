package voiceit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"ivr-server/internal/observability"
)

const defaultTimeout = 30 * time.Second

// ResponseCodeSuccess is the only response code VoiceIt uses for a successful call.
const ResponseCodeSuccess = "SUCC"

var ErrUnexpectedStatus = errors.New("voiceit: unexpected response")

// Result is the subset of a VoiceIt response the call flow cares about.
type Result struct {
	Status       int     `json:"status"`
	ResponseCode string  `json:"responseCode"`
	Message      string  `json:"message"`
	Confidence   float64 `json:"confidence,omitempty"`
	UserID       string  `json:"userId,omitempty"`
}

// EnrollmentSucceeded reports whether an enrollment submission was accepted.
func (r Result) EnrollmentSucceeded() bool {
	return r.ResponseCode == ResponseCodeSuccess
}

// VerificationSucceeded reports whether a verification matched.
func (r Result) VerificationSucceeded() bool {
	return r.Status == http.StatusOK && r.ResponseCode == ResponseCodeSuccess
}

// VoiceRequest describes one by-URL enrollment or verification submission.
type VoiceRequest struct {
	UserID   string
	Language string
	Phrase   string
	AudioURL string
}

// Client talks to the VoiceIt 2 REST API.
type Client struct {
	apiKey     string
	apiToken   string
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient returns a client authenticated with the given key/token pair.
func NewClient(apiKey, apiToken, baseURL string, logger *observability.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://api.voiceit.io"
	}
	return &Client{
		apiKey:     apiKey,
		apiToken:   apiToken,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// EnrollByURL submits a recording hosted at req.AudioURL as a voice enrollment.
func (c *Client) EnrollByURL(ctx context.Context, req VoiceRequest) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "voiceit_user_id", Value: req.UserID},
		observability.Field{Key: "audio_url", Value: req.AudioURL},
	)

	result, err := c.postForm(ctx, "/enrollments/voice/byUrl", voiceFields(req))
	if err != nil {
		c.logger.Error(ctx, "failed to create voice enrollment", err)
		return Result{}, fmt.Errorf("failed to create voice enrollment: %w", err)
	}

	c.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "response_code", Value: result.ResponseCode},
	), "voice enrollment submitted")
	return result, nil
}

// VerifyByURL checks the recording hosted at req.AudioURL against the user's enrollments.
func (c *Client) VerifyByURL(ctx context.Context, req VoiceRequest) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "voiceit_user_id", Value: req.UserID},
		observability.Field{Key: "audio_url", Value: req.AudioURL},
	)

	result, err := c.postForm(ctx, "/verification/voice/byUrl", voiceFields(req))
	if err != nil {
		c.logger.Error(ctx, "failed to verify voice", err)
		return Result{}, fmt.Errorf("failed to verify voice: %w", err)
	}

	c.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "response_code", Value: result.ResponseCode},
		observability.Field{Key: "confidence", Value: result.Confidence},
	), "voice verification submitted")
	return result, nil
}

// CreateUser creates an empty biometrics profile and returns its id.
func (c *Client) CreateUser(ctx context.Context) (string, error) {
	result, err := c.postForm(ctx, "/users", nil)
	if err != nil {
		c.logger.Error(ctx, "failed to create voiceit user", err)
		return "", fmt.Errorf("failed to create voiceit user: %w", err)
	}
	if result.ResponseCode != ResponseCodeSuccess || result.UserID == "" {
		err := fmt.Errorf("%w: responseCode=%s message=%q", ErrUnexpectedStatus, result.ResponseCode, result.Message)
		c.logger.Error(ctx, "failed to create voiceit user", err)
		return "", err
	}
	return result.UserID, nil
}

func voiceFields(req VoiceRequest) map[string]string {
	return map[string]string{
		"userId":          req.UserID,
		"contentLanguage": req.Language,
		"phrase":          req.Phrase,
		"fileUrl":         req.AudioURL,
	}
}

// postForm sends fields as multipart/form-data and decodes the JSON reply.
// Non-2xx replies still carry a VoiceIt body, so they are decoded rather than
// treated as transport errors; only undecodable replies fail.
func (c *Client) postForm(ctx context.Context, path string, fields map[string]string) (Result, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return Result{}, err
		}
	}
	if err := writer.Close(); err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetBasicAuth(c.apiKey, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, fmt.Errorf("%w: status=%d body=%s", ErrUnexpectedStatus, resp.StatusCode, string(raw))
	}
	if result.Status == 0 {
		result.Status = resp.StatusCode
	}
	return result, nil
}
