package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// SetupLifecycle derives the context governing one evaluation run: the
// configured timeout is applied and SIGINT/SIGTERM cancel the context, so a
// slow series or a large batch stops promptly instead of running to the
// term budget after the user gave up.
//
// Parameters:
//   - ctx: The parent context.
//   - timeout: The maximum duration of the run (the -timeout flag).
//
// Returns:
//   - context.Context: The derived context.
//   - *CancelFuncs: The cancel functions; defer Cleanup on them.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *CancelFuncs) {
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	return ctx, &CancelFuncs{
		cancelTimeout: cancelTimeout,
		stopSignals:   stopSignals,
	}
}

// CancelFuncs holds the cancellation handles of a run's context.
type CancelFuncs struct {
	cancelTimeout context.CancelFunc
	stopSignals   context.CancelFunc
}

// Cleanup releases the signal registration and the timeout timer. It is
// safe to call once the run is finished, typically via defer.
func (c *CancelFuncs) Cleanup() {
	if c.stopSignals != nil {
		c.stopSignals()
	}
	if c.cancelTimeout != nil {
		c.cancelTimeout()
	}
}
