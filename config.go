package vllm

import (
	"errors"
	"time"

	"github.com/kbukum/vllm/logger"
	"github.com/kbukum/vllm/validation"
)

// Configuration defaults.
const (
	DefaultBaseURL         = "http://localhost:8000"
	DefaultTimeout         = 60 * time.Second
	DefaultMaxRetries      = 3
	DefaultRetryBackoff    = time.Second
	DefaultMaxRetryBackoff = 30 * time.Second
)

// Config configures a Client. It is copied at construction; the client never
// observes later mutations, and per-call overrides never touch it.
type Config struct {
	// Model is the model identifier sent with every request. Required.
	Model string `json:"model" validate:"required"`

	// BaseURL is the inference server endpoint.
	// Defaults to "http://localhost:8000".
	BaseURL string `json:"base_url" validate:"omitempty,url"`

	// APIKey, when set, is sent as an Authorization: Bearer header.
	APIKey string `json:"-"`

	// Timeout bounds each delivery attempt. Defaults to 60s.
	Timeout time.Duration `json:"timeout"`

	// MaxRetries is the total number of delivery attempts for blocking calls,
	// including the first. Defaults to 3. Streaming calls never retry.
	MaxRetries int `json:"max_retries" validate:"omitempty,gte=1"`

	// RetryBackoff is the delay after the first failed attempt; each further
	// attempt doubles it. Defaults to 1s.
	RetryBackoff time.Duration `json:"retry_backoff"`

	// MaxRetryBackoff caps the backoff delay. Defaults to 30s.
	MaxRetryBackoff time.Duration `json:"max_retry_backoff"`

	// Params are the instance-default generation parameters. Nil fields fall
	// back to DefaultParams.
	Params Params `json:"params"`

	// Headers are extra HTTP headers sent with every request.
	Headers map[string]string `json:"headers"`

	// Logger receives structured request and retry logs. Defaults to a
	// no-op logger.
	Logger *logger.Logger `json:"-" validate:"-"`

	// OnRetry, when set, is invoked before each backoff sleep with the
	// failed attempt number (1-based), the error, and the chosen delay.
	OnRetry func(attempt int, err error, backoff time.Duration) `json:"-"`
}

// applyDefaults fills zero-value fields and resolves instance parameters.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = DefaultRetryBackoff
	}
	if c.MaxRetryBackoff <= 0 {
		c.MaxRetryBackoff = DefaultMaxRetryBackoff
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
	c.Params = c.Params.applyDefaults()
}

// validate checks the configuration and the resolved instance parameters.
// Struct validation dives into Params, so one pass collects every offending
// field into a single ValidationError.
func (c *Config) validate() error {
	err := validation.Struct(c)
	if err == nil {
		return nil
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return &ValidationError{Fields: verr.Fields}
	}
	return &ValidationError{Fields: []validation.FieldError{{Field: "config", Message: err.Error()}}}
}
