package config

import (
	"time"

	"github.com/kbukum/vllm"
)

// Settings is the file and environment representation of client
// configuration. Field names follow the YAML keys; every field can also be
// set through VLLM_-prefixed environment variables.
type Settings struct {
	Model           string            `yaml:"model" mapstructure:"model"`
	BaseURL         string            `yaml:"base_url" mapstructure:"base_url"`
	APIKey          string            `yaml:"api_key" mapstructure:"api_key"`
	Timeout         time.Duration     `yaml:"timeout" mapstructure:"timeout"`
	MaxRetries      int               `yaml:"max_retries" mapstructure:"max_retries"`
	RetryBackoff    time.Duration     `yaml:"retry_backoff" mapstructure:"retry_backoff"`
	MaxRetryBackoff time.Duration     `yaml:"max_retry_backoff" mapstructure:"max_retry_backoff"`
	Preset          string            `yaml:"preset" mapstructure:"preset"`
	Params          vllm.Params       `yaml:"params" mapstructure:"params"`
	Headers         map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ClientConfig converts the settings into a vllm.Config. When a preset is
// named, its parameters form the base and explicit params override them.
// Validation happens in vllm.New, not here.
func (s *Settings) ClientConfig() (vllm.Config, error) {
	params := s.Params
	if s.Preset != "" {
		base, err := vllm.Preset(s.Preset)
		if err != nil {
			return vllm.Config{}, err
		}
		params = base.Merge(&s.Params)
	}

	return vllm.Config{
		Model:           s.Model,
		BaseURL:         s.BaseURL,
		APIKey:          s.APIKey,
		Timeout:         s.Timeout,
		MaxRetries:      s.MaxRetries,
		RetryBackoff:    s.RetryBackoff,
		MaxRetryBackoff: s.MaxRetryBackoff,
		Params:          params,
		Headers:         s.Headers,
	}, nil
}

// LoadSettings loads Settings using Load with the given options.
func LoadSettings(opts ...Option) (*Settings, error) {
	var s Settings
	if err := Load(&s, opts...); err != nil {
		return nil, err
	}
	return &s, nil
}
