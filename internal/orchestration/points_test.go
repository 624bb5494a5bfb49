package orchestration

import (
	"strings"
	"testing"

	apperrors "github.com/agbru/binomcalc/internal/errors"
)

func TestReadPoints(t *testing.T) {
	t.Parallel()

	input := `
# comment line
1 8 0.3333333333333333

2+3i -1i 0.5+0.5i
-8 0 0.3333333333333333
`
	points, err := ReadPoints(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(points))
	}
	if points[0] != (Point{X: 1, Y: 8, Alpha: complex(1.0/3.0, 0)}) {
		t.Errorf("Unexpected first point: %+v", points[0])
	}
	if points[1] != (Point{X: complex(2, 3), Y: complex(0, -1), Alpha: complex(0.5, 0.5)}) {
		t.Errorf("Unexpected second point: %+v", points[1])
	}
	if points[2].X != complex(-8, 0) {
		t.Errorf("Unexpected third point: %+v", points[2])
	}
}

func TestReadPointsMalformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"too few fields", "1 8"},
		{"too many fields", "1 8 0.5 extra"},
		{"bad literal", "1 banana 0.5"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadPoints(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !apperrors.IsValidationError(err) {
				t.Errorf("Expected a ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestPointString(t *testing.T) {
	t.Parallel()
	p := Point{X: complex(2, 3), Y: 8, Alpha: complex(0.5, 0)}
	if got := p.String(); got != "(2+3i + 8)^0.5" {
		t.Errorf("Unexpected rendering: %q", got)
	}
}

func TestGridPoints(t *testing.T) {
	t.Parallel()

	xs := []complex128{1, 2}
	ys := []complex128{10}
	alphas := []complex128{0.5, complex(1.0/3.0, 0), 2}

	points := GridPoints(xs, ys, alphas)
	if len(points) != 6 {
		t.Fatalf("Expected 6 points, got %d", len(points))
	}
	// Row-major: alpha varies fastest, x slowest.
	if points[0] != (Point{X: 1, Y: 10, Alpha: 0.5}) {
		t.Errorf("Unexpected first point: %+v", points[0])
	}
	if points[3] != (Point{X: 2, Y: 10, Alpha: 0.5}) {
		t.Errorf("Unexpected fourth point: %+v", points[3])
	}
}

func TestGridPointsEmptyAxis(t *testing.T) {
	t.Parallel()
	if got := GridPoints(nil, []complex128{1}, []complex128{2}); len(got) != 0 {
		t.Errorf("Expected no points, got %d", len(got))
	}
}
