// Package resilience provides fail-fast protection for the document store.
// There is deliberately no retry helper here: a failed query surfaces
// immediately to the caller, who may retry at a higher layer.
package resilience

import (
	"errors"
	"time"

	"github.com/acmecorp/finboard/internal/domain"

	"github.com/sony/gobreaker"
)

// NewCircuitBreaker creates a circuit breaker with sensible defaults.
// It never re-executes a failed call; it only short-circuits new calls while
// the store is known to be unhealthy. A not-found lookup is a healthy store
// answering a valid query, so it never counts toward tripping.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,                // half-open: allow 3 requests
		Interval:    30 * time.Second, // closed: reset counters every 30s
		Timeout:     10 * time.Second, // open -> half-open after 10s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var notFound *domain.ErrNotFound
			return errors.As(err, &notFound)
		},
	})
}
