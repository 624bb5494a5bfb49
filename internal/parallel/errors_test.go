package parallel

import (
	"errors"
	"sync"
	"testing"
)

func TestErrorCollectorFirstWins(t *testing.T) {
	t.Parallel()

	var ec ErrorCollector
	first := errors.New("first")
	second := errors.New("second")

	ec.SetError(nil)
	if ec.Err() != nil {
		t.Fatalf("Nil error should be ignored, got %v", ec.Err())
	}

	ec.SetError(first)
	ec.SetError(second)
	if !errors.Is(ec.Err(), first) {
		t.Errorf("Expected first error to win, got %v", ec.Err())
	}
}

func TestErrorCollectorConcurrent(t *testing.T) {
	t.Parallel()

	var ec ErrorCollector
	var wg sync.WaitGroup
	sentinel := errors.New("boom")

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				ec.SetError(sentinel)
			} else {
				ec.SetError(nil)
			}
		}(i)
	}
	wg.Wait()

	if !errors.Is(ec.Err(), sentinel) {
		t.Errorf("Expected sentinel error, got %v", ec.Err())
	}
}

func TestErrorCollectorReset(t *testing.T) {
	t.Parallel()

	var ec ErrorCollector
	ec.SetError(errors.New("stale"))
	ec.Reset()
	if ec.Err() != nil {
		t.Errorf("Expected nil after reset, got %v", ec.Err())
	}

	fresh := errors.New("fresh")
	ec.SetError(fresh)
	if !errors.Is(ec.Err(), fresh) {
		t.Errorf("Expected fresh error after reset, got %v", ec.Err())
	}
}
