package binomial

import (
	"math"
	"testing"

	apperrors "github.com/agbru/binomcalc/internal/errors"
)

// FuzzEvaluate hammers the evaluator with arbitrary inputs and checks its
// structural contract: no panics, errors only of the documented kinds, a
// single well-defined path per call, and bit-for-bit deterministic
// diagnostics across repeated calls.
func FuzzEvaluate(f *testing.F) {
	f.Add(1.0, 0.0, 8.0, 0.0, 1.0/3.0, 0.0)
	f.Add(-8.0, 0.0, 0.0, 0.0, 1.0/3.0, 0.0)
	f.Add(0.0, 0.0, 0.0, 0.0, 0.0, 0.0)
	f.Add(3.0, 0.0, -3.0, 0.0, -1.0, 0.0)
	f.Add(1.0, 2.0, 3.0, -1.0, 0.5, 0.5)
	f.Add(5.0, 0.0, 5.0, 0.0, 2.0, 0.0)

	opts := DefaultOptions()
	validPaths := map[Path]bool{
		PathDegenerate: true,
		PathRealRoot:   true,
		PathSeries:     true,
		PathFallback:   true,
	}

	f.Fuzz(func(t *testing.T, xr, xi, yr, yi, ar, ai float64) {
		for _, v := range []float64{xr, xi, yr, yi, ar, ai} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return // only finite inputs are in the evaluator's domain
			}
		}
		x := complex(xr, xi)
		y := complex(yr, yi)
		alpha := complex(ar, ai)

		_, diag, err := EvaluateWithInfo(x, y, alpha, opts)
		if err != nil {
			if !apperrors.IsDomainError(err) {
				t.Fatalf("Unexpected error type %T: %v", err, err)
			}
			return
		}

		if !validPaths[diag.Path] {
			t.Fatalf("Unknown evaluation path %q", diag.Path)
		}
		if diag.TermsUsed < 0 || diag.TermsUsed > opts.MaxTerms*extendedBudgetFactor {
			t.Fatalf("Terms used out of range: %d", diag.TermsUsed)
		}
		if diag.Path != PathSeries && diag.TermsUsed != 0 {
			t.Fatalf("Non-series path reported %d terms", diag.TermsUsed)
		}
		if diag.UsedFallback != (diag.Path == PathFallback) {
			t.Fatalf("Fallback flag inconsistent with path: %+v", diag)
		}

		// Purity: the same inputs must produce the same diagnostics.
		_, diag2, err2 := EvaluateWithInfo(x, y, alpha, opts)
		if err2 != nil || diag2 != diag {
			t.Fatalf("Diagnostics drifted between identical calls:\nfirst:  %+v\nsecond: %+v", diag, diag2)
		}
	})
}
