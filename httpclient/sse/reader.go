// Package sse provides a line-oriented reader for server-sent-event style
// streams, where each unit of data arrives as a single "data: ..." line.
//
// Completion endpoints emit one JSON frame per data line, so each data line
// is surfaced as its own event. Blank lines and lines without the data
// prefix are skipped defensively rather than treated as errors.
package sse

import (
	"bufio"
	"io"
	"strings"
)

// dataPrefix marks a payload-carrying line.
const dataPrefix = "data:"

// Event is a single decoded data frame.
type Event struct {
	// Data is the frame payload with the "data: " prefix stripped.
	Data string
}

// Reader reads data frames from a stream.
type Reader interface {
	// Next returns the next data frame. Returns io.EOF when the stream ends.
	Next() (*Event, error)
	// Close releases the underlying resources.
	Close() error
}

type reader struct {
	scanner *bufio.Scanner
	body    io.ReadCloser
}

// NewReader creates a frame reader from a readable stream.
func NewReader(body io.ReadCloser) Reader {
	return &reader{
		scanner: bufio.NewScanner(body),
		body:    body,
	}
}

// Next returns the next data frame. Blank lines, comment lines, and lines
// not carrying the data prefix are skipped.
func (r *reader) Next() (*Event, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		payload, ok := strings.CutPrefix(line, dataPrefix)
		if !ok {
			continue
		}
		// Strip the single leading space after the colon, if present.
		payload = strings.TrimPrefix(payload, " ")
		return &Event{Data: payload}, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Close releases the underlying stream.
func (r *reader) Close() error {
	return r.body.Close()
}
