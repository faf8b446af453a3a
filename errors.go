package vllm

import (
	"fmt"
	"strings"

	"github.com/kbukum/vllm/validation"
)

// ValidationError reports out-of-range or missing configuration parameters.
// It lists every offending field, not just the first. The caller must fix
// the configuration and construct a new client; the error is never retried.
type ValidationError struct {
	Fields []validation.FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return fmt.Sprintf("vllm: invalid parameters: %s", strings.Join(msgs, "; "))
}

// Has reports whether the given field is among the failures.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// RequestError reports a transport-level failure: connection error, timeout,
// or a non-2xx HTTP status. For blocking calls it is returned only after the
// retry budget is exhausted; for streaming calls any mid-stream failure is
// terminal and surfaces as a RequestError. The caller may retry the whole
// call.
type RequestError struct {
	// Attempts is the number of delivery attempts made, including the first.
	Attempts int
	// Err is the last underlying cause.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("vllm: request failed after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("vllm: request failed: %v", e.Err)
}

// Unwrap returns the underlying cause, so callers can distinguish a timeout
// from a refused connection from an HTTP status error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a 2xx response whose body does not have the
// expected shape (unparseable JSON, or a missing/empty choices list). It is
// never retried: the server delivered a response, retrying would not help.
type MalformedResponseError struct {
	// Body is the offending response body.
	Body []byte
	// Err is the parse error for an unparseable body. Nil when the body
	// parsed but carried no usable choices.
	Err error
}

// Error implements the error interface.
func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vllm: malformed response: %v", e.Err)
	}
	return "vllm: malformed response: missing or empty choices"
}

// Unwrap returns the parse error, if any.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
