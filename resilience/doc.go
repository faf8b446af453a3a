// Package resilience provides bounded retry with exponential backoff for
// calls against an unreliable network boundary.
//
// The backoff sequence is deterministic by default (initial * factor^k,
// capped at MaxBackoff, no jitter) so callers can reason about total wait
// time. Optional jitter can be enabled for fleet-wide smearing.
//
//	result, err := resilience.Retry(ctx, resilience.RetryConfig{
//	    MaxAttempts:    3,
//	    InitialBackoff: time.Second,
//	}, func() (string, error) {
//	    return callEndpoint()
//	})
package resilience
