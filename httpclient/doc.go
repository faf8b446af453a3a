// Package httpclient provides a configurable HTTP client with bearer/API-key
// authentication, typed error classification, bounded retry, and streaming
// support.
//
// The buffered path (Do) applies the configured retry policy; the streaming
// path (DoStream) issues exactly one request and hands the caller an SSE
// reader or raw body to consume incrementally.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "http://localhost:8000",
//	    Timeout: 60 * time.Second,
//	    Auth:    httpclient.BearerAuth("my-token"),
//	    Retry:   httpclient.DefaultRetryConfig(),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "/v1/completions",
//	    Body:   payload,
//	})
package httpclient
