package http

import (
	"net/http"
	"time"
)

// NewClient builds the shared HTTP client used by every adapter in a
// command. The timeout should be the max of the collaborators' timeouts;
// adapters layer shorter per-call deadlines via context.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// MaxDuration returns the larger of the two durations.
func MaxDuration(a, b time.Duration) time.Duration {
	if a >= b {
		return a
	}
	return b
}
