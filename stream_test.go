package vllm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/kbukum/vllm/util"
)

// streamHandler writes the given lines as an event stream.
func streamHandler(lines ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range lines {
			_, _ = io.WriteString(w, line+"\n")
		}
	}
}

// collect drains a chunk channel into texts and the terminal error, if any.
func collect(ch <-chan StreamChunk) ([]string, error) {
	var texts []string
	for chunk := range ch {
		if chunk.Err != nil {
			return texts, chunk.Err
		}
		texts = append(texts, chunk.Text)
	}
	return texts, nil
}

func TestStream_YieldsFragmentsUntilDone(t *testing.T) {
	srv := newTestServer(t, streamHandler(
		`data: {"choices":[{"text":"A"}]}`,
		``,
		`data: {"choices":[{"text":"B"}]}`,
		``,
		`data: [DONE]`,
	))

	c, err := New(Config{Model: "test-model", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ch, err := c.Stream(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	texts, streamErr := collect(ch)
	if streamErr != nil {
		t.Fatalf("unexpected stream error: %v", streamErr)
	}
	want := []string{"A", "B"}
	if len(texts) != len(want) {
		t.Fatalf("got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestStream_SkipsMalformedFrames(t *testing.T) {
	srv := newTestServer(t, streamHandler(
		`data: {"choices":[{"text":"A"}]}`,
		`data: not-json`,
		`data: {"choices":[{"text":"B"}]}`,
		`data: [DONE]`,
	))

	c, _ := New(Config{Model: "test-model", BaseURL: srv.URL})
	ch, err := c.Stream(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	texts, streamErr := collect(ch)
	if streamErr != nil {
		t.Fatalf("malformed frame should not abort the stream: %v", streamErr)
	}
	if len(texts) != 2 || texts[0] != "A" || texts[1] != "B" {
		t.Errorf("texts = %v, want [A B]", texts)
	}
}

func TestStream_SkipsEmptyAndChoicelessFrames(t *testing.T) {
	srv := newTestServer(t, streamHandler(
		`data: {"choices":[]}`,
		`data: {"choices":[{"text":""}]}`,
		`data: {"choices":[{"text":"only"}]}`,
		`data: [DONE]`,
	))

	c, _ := New(Config{Model: "test-model", BaseURL: srv.URL})
	ch, err := c.Stream(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	texts, streamErr := collect(ch)
	if streamErr != nil {
		t.Fatalf("unexpected stream error: %v", streamErr)
	}
	if len(texts) != 1 || texts[0] != "only" {
		t.Errorf("texts = %v, want [only]", texts)
	}
}

func TestStream_EndsWithoutDoneSentinel(t *testing.T) {
	srv := newTestServer(t, streamHandler(
		`data: {"choices":[{"text":"tail"}]}`,
	))

	c, _ := New(Config{Model: "test-model", BaseURL: srv.URL})
	ch, err := c.Stream(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	texts, streamErr := collect(ch)
	if streamErr != nil {
		t.Fatalf("unexpected stream error: %v", streamErr)
	}
	if len(texts) != 1 || texts[0] != "tail" {
		t.Errorf("texts = %v, want [tail]", texts)
	}
}

func TestStream_SetsStreamTrueInPayload(t *testing.T) {
	var captured []byte
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		streamHandler(`data: [DONE]`)(w, r)
	})

	c, _ := New(Config{Model: "test-model", BaseURL: srv.URL})
	ch, err := c.Stream(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	_, _ = collect(ch)

	var payload map[string]any
	if err := json.Unmarshal(captured, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if payload["stream"] != true {
		t.Errorf("stream = %v, want true", payload["stream"])
	}
}

func TestStream_ErrorStatusFailsBeforeStreaming(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	c, _ := New(Config{Model: "test-model", BaseURL: srv.URL})
	_, err := c.Stream(context.Background(), "hello", nil)

	var rerr *RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
	if rerr.Attempts != 1 {
		t.Errorf("attempts = %d, want 1 (streaming never retries)", rerr.Attempts)
	}
}

func TestStream_InvalidOverrideRejected(t *testing.T) {
	srv := newTestServer(t, streamHandler(`data: [DONE]`))

	c, _ := New(Config{Model: "test-model", BaseURL: srv.URL})
	_, err := c.Stream(context.Background(), "hello", &Params{TopK: util.Ptr(0)})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestStream_CancellationClosesChannel(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, `data: {"choices":[{"text":"first"}]}`+"\n")
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-release
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, _ := New(Config{Model: "test-model", BaseURL: srv.URL})
	ch, err := c.Stream(ctx, "hello", nil)
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	if chunk := <-ch; chunk.Text != "first" {
		t.Fatalf("first chunk = %+v, want text %q", chunk, "first")
	}

	cancel()

	select {
	case _, open := <-ch:
		if open {
			// A chunk already in flight is acceptable; the channel must
			// still close right after.
			select {
			case _, open = <-ch:
				if open {
					t.Error("channel still open after cancellation")
				}
			case <-time.After(time.Second):
				t.Error("channel not closed after cancellation")
			}
		}
	case <-time.After(time.Second):
		t.Error("channel not closed after cancellation")
	}
}
