package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/agbru/binomcalc/internal/binomial"
	apperrors "github.com/agbru/binomcalc/internal/errors"
	"github.com/agbru/binomcalc/internal/ui"
)

func newTestEvaluator(t *testing.T) *binomial.Evaluator {
	t.Helper()
	evaluator, err := binomial.NewEvaluator(binomial.DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to build evaluator: %v", err)
	}
	return evaluator
}

func TestEvaluateBatch(t *testing.T) {
	points := []Point{
		{X: 1, Y: 8, Alpha: complex(1.0/3.0, 0)},
		{X: -8, Y: 0, Alpha: complex(1.0/3.0, 0)},
		{X: 3, Y: -3, Alpha: -1}, // pole
		{X: 5, Y: 5, Alpha: 2},
	}

	results, err := EvaluateBatch(context.Background(), points, newTestEvaluator(t), 2, io.Discard)
	if err != nil {
		t.Fatalf("Unexpected batch error: %v", err)
	}
	if len(results) != len(points) {
		t.Fatalf("Expected %d results, got %d", len(points), len(results))
	}

	// Results stay in input order regardless of scheduling.
	for i, res := range results {
		if res.Point != points[i] {
			t.Errorf("Result %d out of order: %+v", i, res.Point)
		}
	}

	if got := real(results[0].Value); math.Abs(got-2.080083823051904) > 1e-9 {
		t.Errorf("Unexpected value for cube root point: %v", results[0].Value)
	}
	if math.Abs(real(results[1].Value)+2) > 1e-12 || imag(results[1].Value) != 0 {
		t.Errorf("Expected the real root -2, got %v", results[1].Value)
	}
	if results[2].Err == nil || !apperrors.IsDomainError(results[2].Err) {
		t.Errorf("Expected a pole error, got %v", results[2].Err)
	}
	if math.Abs(real(results[3].Value)-100) > 1e-9 {
		t.Errorf("Expected 100 for the integer power, got %v", results[3].Value)
	}
}

func TestEvaluateBatchDefaultWorkers(t *testing.T) {
	points := []Point{{X: 1, Y: 8, Alpha: 0.5}}
	results, err := EvaluateBatch(context.Background(), points, newTestEvaluator(t), 0, io.Discard)
	if err != nil {
		t.Fatalf("Unexpected batch error: %v", err)
	}
	if results[0].Err != nil {
		t.Errorf("Unexpected point error: %v", results[0].Err)
	}
}

func TestEvaluateBatchCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	points := GridPoints(
		[]complex128{1, 2, 3},
		[]complex128{4, 5, 6},
		[]complex128{0.5},
	)
	_, err := EvaluateBatch(ctx, points, newTestEvaluator(t), 2, io.Discard)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.DarkTheme)

	points := []Point{
		{X: 1, Y: 8, Alpha: complex(1.0/3.0, 0)},
		{X: 3, Y: -3, Alpha: -1},
	}
	results, err := EvaluateBatch(context.Background(), points, newTestEvaluator(t), 1, io.Discard)
	if err != nil {
		t.Fatalf("Unexpected batch error: %v", err)
	}

	var buf bytes.Buffer
	code := Summarize(results, nil, &buf)
	if code != apperrors.ExitSuccess {
		t.Errorf("Expected exit code %d, got %d", apperrors.ExitSuccess, code)
	}
	out := buf.String()
	for _, want := range []string{"Batch Summary", "series=1", "Poles: 1", "Global Status: Success. 1/2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q:\n%s", want, out)
		}
	}
}

func TestSummarizeAllPoles(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.DarkTheme)

	results := []PointResult{
		{Point: Point{X: 1, Y: -1, Alpha: -2}, Err: apperrors.NewDomainError("zero base with non-positive exponent real part")},
	}
	var buf bytes.Buffer
	code := Summarize(results, nil, &buf)
	if code != apperrors.ExitErrorDomain {
		t.Errorf("Expected exit code %d, got %d", apperrors.ExitErrorDomain, code)
	}
	if !strings.Contains(buf.String(), "Global Status: Failure") {
		t.Errorf("Expected a failure status:\n%s", buf.String())
	}
}

func TestSummarizeInterrupted(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.DarkTheme)

	var buf bytes.Buffer
	code := Summarize(nil, context.Canceled, &buf)
	if code != apperrors.ExitErrorCanceled {
		t.Errorf("Expected exit code %d, got %d", apperrors.ExitErrorCanceled, code)
	}
	if !strings.Contains(buf.String(), "Interrupted") {
		t.Errorf("Expected an interrupted status:\n%s", buf.String())
	}
}
