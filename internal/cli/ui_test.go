package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"microseconds", 500 * time.Microsecond, "500µs"},
		{"milliseconds", 250 * time.Millisecond, "250ms"},
		{"seconds", 2 * time.Second, "2s"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatExecutionDuration(tc.d); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		progress  float64
		length    int
		wantFull  int
		wantEmpty int
	}{
		{"empty", 0.0, 10, 0, 10},
		{"half", 0.5, 10, 5, 5},
		{"full", 1.0, 10, 10, 0},
		{"clamped above", 1.5, 10, 10, 0},
		{"clamped below", -0.2, 10, 0, 10},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			bar := progressBar(tc.progress, tc.length)
			if got := strings.Count(bar, "█"); got != tc.wantFull {
				t.Errorf("Expected %d full cells, got %d (%q)", tc.wantFull, got, bar)
			}
			if got := strings.Count(bar, "░"); got != tc.wantEmpty {
				t.Errorf("Expected %d empty cells, got %d (%q)", tc.wantEmpty, got, bar)
			}
		})
	}
}

// fakeSpinner records spinner interactions without touching the terminal.
type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
}

func (f *fakeSpinner) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSpinner) UpdateSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffixes = append(f.suffixes, suffix)
}

func TestDisplayBatchProgress(t *testing.T) {
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(options ...spinner.Option) Spinner { return fake }
	defer func() { newSpinner = orig }()

	doneChan := make(chan struct{}, 4)
	var buf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayBatchProgress(&wg, doneChan, 4, &buf)

	for i := 0; i < 4; i++ {
		doneChan <- struct{}{}
	}
	close(doneChan)
	wg.Wait()

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if !fake.started || !fake.stopped {
		t.Errorf("Spinner lifecycle incomplete: started=%v stopped=%v", fake.started, fake.stopped)
	}
	out := buf.String()
	if !strings.Contains(out, "100.00%") || !strings.Contains(out, "4/4 points") {
		t.Errorf("Final progress line missing: %q", out)
	}
}

func TestDisplayBatchProgressZeroPoints(t *testing.T) {
	doneChan := make(chan struct{})
	close(doneChan)

	var buf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayBatchProgress(&wg, doneChan, 0, &buf)
	wg.Wait()

	if buf.Len() != 0 {
		t.Errorf("Expected no output for an empty batch, got %q", buf.String())
	}
}
