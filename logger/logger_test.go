package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("level = %q, want %q", cfg.Level, "info")
	}
	if cfg.Format != "console" {
		t.Errorf("format = %q, want %q", cfg.Format, "console")
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "test").WithComponent("client")

	log.Info("request sent", Fields(FieldRequestID, "abc-123", FieldAttempt, 2))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "client" {
		t.Errorf("component = %v, want %q", entry["component"], "client")
	}
	if entry["request_id"] != "abc-123" {
		t.Errorf("request_id = %v, want %q", entry["request_id"], "abc-123")
	}
	if entry["message"] != "request sent" {
		t.Errorf("message = %v, want %q", entry["message"], "request sent")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "test").WithError(errors.New("boom"))

	log.Warn("attempt failed")

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("output %q does not contain wrapped error", buf.String())
	}
}

func TestNopDiscards(t *testing.T) {
	// Must not panic and must not write anywhere.
	Nop().Error("ignored", ErrorFields("op", errors.New("x")))
}
