package binomial

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// goldenCase mirrors the schema produced by cmd/generate-golden.
type goldenCase struct {
	X     string  `json:"x"`
	Y     string  `json:"y"`
	Alpha string  `json:"alpha"`
	Real  float64 `json:"real"`
	Imag  float64 `json:"imag"`
}

// TestGoldenValues validates the evaluator against the committed golden
// file. Regenerate with: go run ./cmd/generate-golden
func TestGoldenValues(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "binomial_golden.json"))
	if err != nil {
		t.Fatalf("Failed to read golden file: %v", err)
	}
	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("Failed to parse golden file: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("Golden file contains no cases")
	}

	for _, tc := range cases {
		tc := tc
		name := "(" + tc.X + "+" + tc.Y + ")^" + tc.Alpha
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			x := mustParseComplex(t, tc.X)
			y := mustParseComplex(t, tc.Y)
			alpha := mustParseComplex(t, tc.Alpha)

			got, err := Evaluate(x, y, alpha, DefaultOptions())
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			want := complex(tc.Real, tc.Imag)
			if !approxEqual(got, want, 1e-9) {
				t.Errorf("Incorrect result.\nExpected: %v\nGot: %v", want, got)
			}
		})
	}
}

func mustParseComplex(t *testing.T, s string) complex128 {
	t.Helper()
	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		t.Fatalf("Invalid complex literal %q: %v", s, err)
	}
	return c
}
