package mongo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
)

const (
	breakerFailures = 5
	breakerTimeout  = 30 * time.Second
)

func newBreaker(logger *slog.Logger) circuitbreaker.CircuitBreaker[any] {
	return circuitbreaker.New[any](circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(from, to circuitbreaker.State) {
			logger.Warn("mongodb circuit breaker state change",
				"from", from.String(),
				"to", to.String())
		},
		IsSuccessful: storeHealthy,
	})
}

// storeHealthy reports whether err says nothing bad about the store. A caller
// that goes away mid-query cancels its own context; that is not a store fault.
// Deadline errors still count because the client timeout produces them.
func storeHealthy(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// run executes fn through the breaker. Outcomes that are answers rather than
// faults (no documents, duplicate key) must be returned by fn as values, not
// errors, so they never count towards tripping.
func run[T any](ctx context.Context, cb circuitbreaker.CircuitBreaker[any], fn func(context.Context) (T, error)) (T, error) {
	var zero T

	res, err := cb.Execute(ctx, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}

	v, _ := res.(T)
	return v, nil
}
