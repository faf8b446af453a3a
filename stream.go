package vllm

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/kbukum/vllm/httpclient"
	"github.com/kbukum/vllm/httpclient/sse"
)

// doneSentinel terminates a completion stream.
const doneSentinel = "[DONE]"

// StreamChunk is one decoded fragment of generated text. A non-nil Err is
// always the final chunk before the channel closes.
type StreamChunk struct {
	// Text is the fragment extracted from one stream frame.
	Text string
	// Err is set when the stream fails mid-flight.
	Err error
}

// readStream consumes the response body frame by frame and forwards decoded
// text fragments. It owns the connection: every exit path closes the
// response and the channel.
func (c *Client) readStream(ctx context.Context, resp *httpclient.StreamResponse, ch chan<- StreamChunk) {
	defer close(ch)
	defer func() { _ = resp.Close() }()

	reader := resp.SSE
	if reader == nil {
		// Some servers stream data lines without the event-stream content
		// type. The frame protocol is the same either way.
		if resp.Body == nil {
			return
		}
		reader = sse.NewReader(resp.Body)
	}

	for {
		event, err := reader.Next()
		if err != nil {
			if err != io.EOF && ctx.Err() == nil {
				c.sendChunk(ctx, ch, StreamChunk{Err: &RequestError{Attempts: 1, Err: err}})
			}
			return
		}

		if strings.TrimSpace(event.Data) == doneSentinel {
			return
		}

		var frame completionResponse
		if err := json.Unmarshal([]byte(event.Data), &frame); err != nil {
			// Malformed frames are skipped, they do not abort the stream.
			continue
		}
		if len(frame.Choices) == 0 || frame.Choices[0].Text == "" {
			continue
		}

		if !c.sendChunk(ctx, ch, StreamChunk{Text: frame.Choices[0].Text}) {
			return
		}
	}
}

// sendChunk delivers a chunk unless the context is cancelled first.
func (c *Client) sendChunk(ctx context.Context, ch chan<- StreamChunk, chunk StreamChunk) bool {
	select {
	case ch <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
