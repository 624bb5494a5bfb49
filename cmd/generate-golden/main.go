package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"strconv"
)

// GoldenData represents a single test case in the golden file
type GoldenData struct {
	X     string  `json:"x"`
	Y     string  `json:"y"`
	Alpha string  `json:"alpha"`
	Real  float64 `json:"real"`
	Imag  float64 `json:"imag"`
}

// goldenTarget is an input triple, as complex literals.
type goldenTarget struct {
	x, y, alpha string
}

func main() {
	outputDir := flag.String("out", "internal/binomial/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "binomial_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Interesting cases across all evaluation regimes:
	// - series with small and large magnitude ratios
	// - zero offsets and integer exponents
	// - negative real sums with odd and even root exponents
	// - the slow-convergence zone near the fallback boundary
	// - fully complex operands and exponents
	targets := []goldenTarget{
		{"1", "8", "0.3333333333333333"},
		{"10000", "62500", "0.5"},
		{"10", "0", "0.75"},
		{"2", "3", "2"},
		{"3", "-1", "0.5"},
		{"-8", "0", "0.3333333333333333"},
		{"-27", "0", "0.6666666666666666"},
		{"0.5", "0.25", "-1"},
		{"-2", "-6", "3"},
		{"5", "5", "2"},
		{"1", "1.1", "0.3333333333333333"},
		{"0.001", "1000", "-2.5"},
		{"1+2i", "3-1i", "0.5+0.5i"},
		{"2i", "1", "1.5"},
	}

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, tgt := range targets {
		value := oracle(mustParse(tgt.x), mustParse(tgt.y), mustParse(tgt.alpha))
		data = append(data, GoldenData{
			X:     tgt.x,
			Y:     tgt.y,
			Alpha: tgt.alpha,
			Real:  real(value),
			Imag:  imag(value),
		})
		fmt.Printf("Generated (%s + %s)^%s\n", tgt.x, tgt.y, tgt.alpha)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

func mustParse(s string) complex128 {
	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid complex literal %q: %v\n", s, err)
		os.Exit(1)
	}
	return c
}

// oracle computes (x+y)^alpha from the mathematical definition, independent
// of the evaluator under test. It uses the principal branch of the complex
// power, except for negative real sums raised to rational exponents with odd
// denominators, where the correct real root is the expected value.
func oracle(x, y, alpha complex128) complex128 {
	sum := x + y
	if alpha == 0 {
		return 1
	}
	if sum == 0 {
		return 0
	}

	if imag(x) == 0 && imag(y) == 0 && imag(alpha) == 0 && real(sum) < 0 {
		if num, ok := oddRootNumerator(real(alpha)); ok {
			magnitude := math.Pow(-real(sum), real(alpha))
			sign := 1.0
			if num%2 != 0 {
				sign = -1.0
			}
			return complex(sign*magnitude, 0)
		}
	}
	return cmplx.Exp(alpha * cmplx.Log(sum))
}

// oddRootNumerator reconstructs alpha as a reduced fraction with denominator
// at most 1000 and reports the numerator when the denominator is odd.
func oddRootNumerator(alpha float64) (int64, bool) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return 0, false
	}
	num, den, ok := boundedRational(alpha, 1000, 1e-9)
	if !ok || den%2 == 0 {
		return 0, false
	}
	return num, true
}

func boundedRational(v float64, maxDen int64, tol float64) (int64, int64, bool) {
	hPrev2, kPrev2 := int64(0), int64(1)
	hPrev1, kPrev1 := int64(1), int64(0)
	x := v
	for i := 0; i < 40; i++ {
		ai := int64(math.Floor(x))
		h := ai*hPrev1 + hPrev2
		k := ai*kPrev1 + kPrev2
		if k > maxDen {
			break
		}
		hPrev2, kPrev2 = hPrev1, kPrev1
		hPrev1, kPrev1 = h, k
		if math.Abs(v-float64(h)/float64(k)) < tol {
			return h, k, true
		}
		frac := x - math.Floor(x)
		if frac == 0 {
			break
		}
		x = 1 / frac
	}
	return 0, 0, false
}
