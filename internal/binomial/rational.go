package binomial

import "math"

// maxConvergentSteps bounds the continued-fraction expansion. Double
// precision carries at most ~40 useful partial quotients.
const maxConvergentSteps = 40

// approxRational reconstructs v as a fraction num/den in lowest terms using
// a bounded continued-fraction expansion. The returned denominator is always
// positive; the sign is carried by the numerator. Convergents of a continued
// fraction are automatically in lowest terms, so no gcd reduction is needed.
//
// The expansion stops at the first convergent within tol of v, or when the
// next convergent's denominator would exceed maxDen. This is a pure numeric
// helper: no float-to-string formatting is involved, so the behavior is
// independent of printing conventions.
//
// Parameters:
//   - v: The value to reconstruct.
//   - maxDen: The largest acceptable denominator.
//   - tol: The acceptance bound |v - num/den| <= tol.
//
// Returns:
//   - num: The numerator of the reconstructed fraction.
//   - den: The (positive) denominator.
//   - ok: Whether a fraction within tol and denominator bound was found.
func approxRational(v float64, maxDen int64, tol float64) (num, den int64, ok bool) {
	if maxDen <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0, false
	}
	// Convergents h_n/k_n with h_{-1}=1, k_{-1}=0, h_{-2}=0, k_{-2}=1.
	hPrev2, kPrev2 := int64(0), int64(1)
	hPrev1, kPrev1 := int64(1), int64(0)

	x := v
	for i := 0; i < maxConvergentSteps; i++ {
		a := math.Floor(x)
		if a > float64(math.MaxInt64/4) || a < float64(math.MinInt64/4) {
			return 0, 0, false
		}
		ai := int64(a)

		h := ai*hPrev1 + hPrev2
		k := ai*kPrev1 + kPrev2
		if k > maxDen || k <= 0 {
			return 0, 0, false
		}
		if math.Abs(v-float64(h)/float64(k)) <= tol {
			return h, k, true
		}

		hPrev2, kPrev2 = hPrev1, kPrev1
		hPrev1, kPrev1 = h, k

		frac := x - a
		if frac <= 0 {
			// Expansion terminated exactly and still missed tol.
			return 0, 0, false
		}
		x = 1 / frac
	}
	return 0, 0, false
}

// oddRootOf checks whether alpha is recognizably a rational with an odd
// denominator, which is the condition under which a negative real base has
// a mathematically correct real root.
//
// Returns:
//   - num: The numerator of the reconstructed exponent.
//   - ok: Whether the odd-root rule applies.
func oddRootOf(alpha float64, maxDen int64, tol float64) (num int64, ok bool) {
	n, d, found := approxRational(alpha, maxDen, tol)
	if !found || d%2 == 0 {
		return 0, false
	}
	return n, true
}
