package sse

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// mockReadCloser wraps a string reader as an io.ReadCloser.
type mockReadCloser struct {
	*strings.Reader
	closed bool
}

func (m *mockReadCloser) Close() error {
	m.closed = true
	return nil
}

func newMockBody(s string) *mockReadCloser {
	return &mockReadCloser{Reader: strings.NewReader(s)}
}

func TestReader_SingleFrame(t *testing.T) {
	r := NewReader(newMockBody("data: hello world\n\n"))
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "hello world" {
		t.Errorf("data = %q, want %q", ev.Data, "hello world")
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestReader_MultipleFrames(t *testing.T) {
	body := "data: one\n\ndata: two\n\ndata: three\n\n"
	r := NewReader(newMockBody(body))
	defer r.Close()

	var frames []string
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		frames = append(frames, ev.Data)
	}

	want := []string{"one", "two", "three"}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame[%d] = %q, want %q", i, frames[i], want[i])
		}
	}
}

func TestReader_SkipsNonDataLines(t *testing.T) {
	body := ": comment\nevent: message\nnoise without prefix\ndata: payload\n\n"
	r := NewReader(newMockBody(body))
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "payload" {
		t.Errorf("data = %q, want %q", ev.Data, "payload")
	}
}

func TestReader_NoSpaceAfterColon(t *testing.T) {
	r := NewReader(newMockBody("data:tight\n"))
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "tight" {
		t.Errorf("data = %q, want %q", ev.Data, "tight")
	}
}

func TestReader_FinalFrameWithoutTrailingNewline(t *testing.T) {
	r := NewReader(newMockBody("data: last"))
	defer r.Close()

	ev, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Data != "last" {
		t.Errorf("data = %q, want %q", ev.Data, "last")
	}
}

func TestReader_EmptyStream(t *testing.T) {
	r := NewReader(newMockBody(""))
	defer r.Close()

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestReader_CloseReleasesBody(t *testing.T) {
	body := newMockBody("data: x\n")
	r := NewReader(body)
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !body.closed {
		t.Error("underlying body was not closed")
	}
}

type failingReader struct{ err error }

func (f *failingReader) Read([]byte) (int, error) { return 0, f.err }
func (f *failingReader) Close() error             { return nil }

func TestReader_PropagatesReadError(t *testing.T) {
	wantErr := errors.New("connection reset")
	r := NewReader(&failingReader{err: wantErr})

	_, err := r.Next()
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
