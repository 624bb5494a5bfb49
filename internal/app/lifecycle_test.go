package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSetupLifecycleTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancels := SetupLifecycle(context.Background(), 5*time.Millisecond)
	defer cancels.Cleanup()

	select {
	case <-ctx.Done():
		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			t.Errorf("Expected DeadlineExceeded, got %v", ctx.Err())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout never fired")
	}
}

func TestCancelFuncsCleanup(t *testing.T) {
	t.Parallel()

	ctx, cancels := SetupLifecycle(context.Background(), time.Hour)
	cancels.Cleanup()

	select {
	case <-ctx.Done():
		if !errors.Is(ctx.Err(), context.Canceled) {
			t.Errorf("Expected Canceled, got %v", ctx.Err())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Cleanup did not cancel the context")
	}
}
