// Package clients provides the outbound HTTP client used by remote import
// sources: retries with backoff, a circuit breaker, tracing and metrics.
package clients

import (
	"errors"
	"fmt"
)

var (
	// ErrCircuitOpen means the breaker is rejecting calls to the downstream.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRetriesExhausted wraps the last failure once every attempt is used.
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// StatusError is a non-2xx response that was not retried.
type StatusError struct {
	Service string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Service, e.Code)
}
