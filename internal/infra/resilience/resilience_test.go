package resilience_test

import (
	"errors"
	"testing"

	"github.com/acmecorp/finboard/internal/domain"
	"github.com/acmecorp/finboard/internal/infra/resilience"

	"github.com/sony/gobreaker"
)

func TestCircuitBreaker_PassesThroughSuccess(t *testing.T) {
	cb := resilience.NewCircuitBreaker("test")

	v, err := cb.Execute(func() (any, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v.(int) != 42 {
		t.Errorf("expected 42, got %v", v)
	}
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	cb := resilience.NewCircuitBreaker("test")
	boom := errors.New("store down")

	// Trip threshold: >=5 requests with >=60% failures.
	for i := 0; i < 6; i++ {
		_, err := cb.Execute(func() (any, error) {
			return nil, boom
		})
		if err == nil {
			t.Fatal("expected error to pass through")
		}
	}

	_, err := cb.Execute(func() (any, error) {
		t.Fatal("call must not be executed while breaker is open")
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected ErrOpenState, got %v", err)
	}
}

func TestCircuitBreaker_StaysClosedOnNotFound(t *testing.T) {
	cb := resilience.NewCircuitBreaker("test")

	// Lookups for missing ids are valid queries against a healthy store.
	// Well past the trip threshold, the breaker must stay closed.
	for i := 0; i < 10; i++ {
		_, err := cb.Execute(func() (any, error) {
			return nil, &domain.ErrNotFound{Resource: "invoice", ID: "missing"}
		})
		var notFound *domain.ErrNotFound
		if !errors.As(err, &notFound) {
			t.Fatalf("expected not-found to pass through, got %v", err)
		}
	}

	if state := cb.State(); state != gobreaker.StateClosed {
		t.Fatalf("expected breaker to stay closed after not-found lookups, got %v", state)
	}

	executed := false
	_, err := cb.Execute(func() (any, error) {
		executed = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("healthy call rejected after not-found lookups: %v", err)
	}
	if !executed {
		t.Error("healthy call was not executed")
	}
}

func TestCircuitBreaker_NeverRetries(t *testing.T) {
	cb := resilience.NewCircuitBreaker("test")

	calls := 0
	_, err := cb.Execute(func() (any, error) {
		calls++
		return nil, errors.New("fail once")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected exactly 1 call, got %d", calls)
	}
}
