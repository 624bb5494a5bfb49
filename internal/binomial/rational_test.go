package binomial

import (
	"math"
	"testing"
)

// TestApproxRational validates the continued-fraction reconstruction against
// known fractions, including negative values and denominator bounds.
func TestApproxRational(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		v       float64
		maxDen  int64
		tol     float64
		wantNum int64
		wantDen int64
		wantOK  bool
	}{
		{"one third", 1.0 / 3.0, 1000, 1e-9, 1, 3, true},
		{"one half", 0.5, 1000, 1e-9, 1, 2, true},
		{"two thirds", 2.0 / 3.0, 1000, 1e-9, 2, 3, true},
		{"negative third", -1.0 / 3.0, 1000, 1e-9, -1, 3, true},
		{"integer", 3.0, 1000, 1e-9, 3, 1, true},
		{"one fifth", 0.2, 1000, 1e-9, 1, 5, true},
		{"seven ninths", 7.0 / 9.0, 1000, 1e-9, 7, 9, true},
		{"denominator too large", 1.0 / 1001.0, 1000, 1e-9, 0, 0, false},
		{"pi is not rational enough", math.Pi, 1000, 1e-9, 0, 0, false},
		{"loose tolerance accepts", 0.3333, 1000, 1e-3, 1, 3, true},
		{"zero", 0.0, 1000, 1e-9, 0, 1, true},
		{"nan rejected", math.NaN(), 1000, 1e-9, 0, 0, false},
		{"inf rejected", math.Inf(1), 1000, 1e-9, 0, 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			num, den, ok := approxRational(tc.v, tc.maxDen, tc.tol)
			if ok != tc.wantOK {
				t.Fatalf("Expected ok=%v, got ok=%v (num=%d den=%d)", tc.wantOK, ok, num, den)
			}
			if ok && (num != tc.wantNum || den != tc.wantDen) {
				t.Errorf("Expected %d/%d, got %d/%d", tc.wantNum, tc.wantDen, num, den)
			}
		})
	}
}

// TestOddRootOf validates the odd-denominator gate that decides whether a
// negative real base has a correct real root.
func TestOddRootOf(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		alpha   float64
		wantNum int64
		wantOK  bool
	}{
		{"cube root", 1.0 / 3.0, 1, true},
		{"two thirds", 2.0 / 3.0, 2, true},
		{"negative cube root", -1.0 / 3.0, -1, true},
		{"integer exponent", 3.0, 3, true},
		{"square root has even denominator", 0.5, 0, false},
		{"three quarters has even denominator", 0.75, 0, false},
		{"irrational", math.Sqrt2, 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			num, ok := oddRootOf(tc.alpha, DefaultMaxDenominator, DefaultRationalTolerance)
			if ok != tc.wantOK {
				t.Fatalf("Expected ok=%v, got ok=%v", tc.wantOK, ok)
			}
			if ok && num != tc.wantNum {
				t.Errorf("Expected numerator %d, got %d", tc.wantNum, num)
			}
		})
	}
}
