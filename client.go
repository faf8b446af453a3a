package vllm

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/vllm/httpclient"
	"github.com/kbukum/vllm/logger"
	"github.com/kbukum/vllm/resilience"
)

// completionsPath is the completion endpoint route.
const completionsPath = "/v1/completions"

// Client calls a vLLM-compatible completion endpoint. The configuration is
// fixed at construction, so a Client is safe for concurrent use; every call
// works on a call-local copy of the parameters.
type Client struct {
	cfg    Config
	params Params
	http   *httpclient.Client
	log    *logger.Logger
}

// New constructs a Client. It fails with a *ValidationError listing every
// out-of-range or missing field; a returned client is ready for use.
func New(cfg Config) (*Client, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var auth *httpclient.AuthConfig
	if cfg.APIKey != "" {
		auth = httpclient.BearerAuth(cfg.APIKey)
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth:    auth,
		Headers: cfg.Headers,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:    cfg,
		params: cfg.Params,
		http:   hc,
		log:    cfg.Logger.WithComponent("vllm"),
	}, nil
}

// Complete sends the prompt and returns the generated text. Overrides, when
// non-nil, replace the instance defaults field by field for this call only.
//
// Transport failures (connection errors, timeouts, non-2xx statuses) are
// retried with exponential backoff up to MaxRetries attempts; the final
// failure is returned as a *RequestError wrapping the last cause. A 2xx
// response without a usable choices list is a *MalformedResponseError and is
// not retried.
func (c *Client) Complete(ctx context.Context, prompt string, overrides *Params) (string, error) {
	payload, err := c.buildPayload(prompt, overrides, false)
	if err != nil {
		return "", err
	}

	requestID := uuid.NewString()
	start := time.Now()

	c.log.Debug("sending completion request", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldModel, c.cfg.Model,
	))

	attempts := 1
	retryCfg := resilience.RetryConfig{
		MaxAttempts:    c.cfg.MaxRetries,
		InitialBackoff: c.cfg.RetryBackoff,
		MaxBackoff:     c.cfg.MaxRetryBackoff,
		RetryIf:        httpclient.IsTransport,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			attempts = attempt + 1
			c.log.Warn("completion attempt failed, retrying", logger.Fields(
				logger.FieldRequestID, requestID,
				logger.FieldAttempt, attempt,
				logger.FieldBackoff, backoff.Milliseconds(),
				logger.FieldError, err.Error(),
			))
			if c.cfg.OnRetry != nil {
				c.cfg.OnRetry(attempt, err, backoff)
			}
		},
	}

	resp, err := resilience.Retry(ctx, retryCfg, func() (*httpclient.Response, error) {
		return c.http.Do(ctx, httpclient.Request{
			Method:  http.MethodPost,
			Path:    completionsPath,
			Headers: map[string]string{"X-Request-ID": requestID},
			Body:    payload,
		})
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		c.log.Error("completion request failed", logger.Fields(
			logger.FieldRequestID, requestID,
			logger.FieldAttempt, attempts,
			logger.FieldError, err.Error(),
		))
		return "", &RequestError{Attempts: attempts, Err: err}
	}

	text, err := extractText(resp.Body)
	if err != nil {
		return "", err
	}

	c.log.Info("completion finished", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return text, nil
}

// Stream sends the prompt and returns a channel of decoded text fragments.
// The channel is closed when the server signals end of stream, when the
// stream fails, or when ctx is cancelled; a mid-stream failure is delivered
// as the final chunk's Err. There is no retry, a streaming call either
// completes or fails as a whole.
//
// Cancelling ctx closes the underlying connection promptly, so a consumer
// that stops reading must cancel to release it.
func (c *Client) Stream(ctx context.Context, prompt string, overrides *Params) (<-chan StreamChunk, error) {
	payload, err := c.buildPayload(prompt, overrides, true)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()

	c.log.Debug("opening completion stream", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldModel, c.cfg.Model,
	))

	resp, err := c.http.DoStream(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    completionsPath,
		Headers: map[string]string{"X-Request-ID": requestID},
		Body:    payload,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RequestError{Attempts: 1, Err: err}
	}

	ch := make(chan StreamChunk)
	go c.readStream(ctx, resp, ch)
	return ch, nil
}

// buildPayload merges overrides onto the instance defaults, validates the
// result, and assembles the request body.
func (c *Client) buildPayload(prompt string, overrides *Params, stream bool) (*completionRequest, error) {
	effective := c.params.Merge(overrides)
	if err := validateParams(&effective); err != nil {
		return nil, err
	}

	return &completionRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: stream,
		Params: effective,
	}, nil
}

// extractText pulls the first choice's text out of a buffered response body.
func extractText(body []byte) (string, error) {
	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &MalformedResponseError{Body: body, Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &MalformedResponseError{Body: body}
	}
	return parsed.Choices[0].Text, nil
}
