// Package binomial evaluates the generalized binomial expression (x + y)^alpha
// for complex x, y and alpha using Newton's generalized binomial series
// rather than a direct power call.
//
// The evaluation preconditions the operands so that the series ratio
// z = offset/base has magnitude below one, sums the series with incremental
// generalized binomial coefficients, and falls back to the principal-branch
// exp(alpha*log(x+y)) formulation whenever the series cannot converge
// quickly. Negative real bases with fractional exponents of odd denominator
// are special-cased to recover the mathematically correct real root (e.g.
// the cube root of -8 is -2, not the principal complex root).
//
// Every call is a pure function over its inputs: no shared state, no I/O,
// safe for unbounded concurrent use.
package binomial

import (
	"math"
	"math/cmplx"

	apperrors "github.com/agbru/binomcalc/internal/errors"
)

// Evaluate computes (x + y)^alpha.
//
// Results are always complex128; the negative-real-base odd-root special
// case returns an exactly zero imaginary part. Exponents on negative real
// bases that are not recognizably rational with a small odd denominator
// yield the principal complex branch, not a real value - that boundary is
// inherent to floating-point exponents and is disclosed via diagnostics
// rather than silently "fixed".
//
// Parameters:
//   - x, y: The operands, real values being complex128 with zero imaginary part.
//   - alpha: The exponent.
//   - opts: Evaluation options (see DefaultOptions).
//
// Returns:
//   - complex128: The computed value.
//   - error: A ValidationError for invalid options, or a DomainError when
//     x+y == 0 with Re(alpha) <= 0 and alpha != 0 (a true pole). Slow or
//     non-convergence is never an error; use EvaluateWithInfo to observe it.
func Evaluate(x, y, alpha complex128, opts Options) (complex128, error) {
	v, _, err := evaluate(x, y, alpha, opts)
	return v, err
}

// EvaluateWithInfo computes (x + y)^alpha and additionally returns a
// Diagnostics record describing which branch executed, how many series
// terms were used, and whether the series converged. Identical inputs
// always yield identical diagnostics.
//
// TermsUsed may exceed Options.MaxTerms: series ratios just inside the
// convergence boundary (|z| > 0.75) get three times the configured budget
// before non-convergence is reported.
func EvaluateWithInfo(x, y, alpha complex128, opts Options) (complex128, Diagnostics, error) {
	return evaluate(x, y, alpha, opts)
}

// evaluate is the single evaluation routine behind the exported entry
// points. Exactly one of the four branches (degenerate, real odd root,
// series, fallback) produces the value.
func evaluate(x, y, alpha complex128, opts Options) (complex128, Diagnostics, error) {
	if err := opts.Validate(); err != nil {
		return 0, Diagnostics{}, err
	}

	// alpha == 0 resolves to 1 before the zero-base check, so 0^0 == 1
	// by the standard convention.
	if alpha == 0 {
		return 1, Diagnostics{Path: PathDegenerate, Converged: true}, nil
	}

	sum := x + y

	if sum == 0 {
		if real(alpha) > 0 {
			return 0, Diagnostics{Path: PathDegenerate, Converged: true}, nil
		}
		return 0, Diagnostics{Path: PathDegenerate}, apperrors.NewDomainError(
			"cannot raise exact zero to an exponent with non-positive real part (pole)")
	}

	// Negative real base with real exponent: prefer the real odd root when
	// the exponent is recognizably rational with an odd denominator.
	if isReal(x) && isReal(y) && isReal(alpha) && real(sum) < 0 {
		if num, ok := oddRootOf(real(alpha), opts.MaxDenominator, opts.RationalTolerance); ok {
			sign := 1.0
			if num%2 != 0 {
				sign = -1.0
			}
			magnitude := math.Pow(-real(sum), real(alpha))
			diag := Diagnostics{Path: PathRealRoot, Converged: true, Base: sum}
			return complex(sign*magnitude, 0), diag, nil
		}
		// Not close to a small odd-denominator rational: the principal
		// complex branch is the documented result.
		return fallback(sum, alpha), Diagnostics{Path: PathFallback, Converged: true, UsedFallback: true, Base: sum}, nil
	}

	// Preconditioning: the larger-magnitude operand becomes the base so
	// that |z| = |offset/base| <= 1.
	base, offset := x, y
	if cmplx.Abs(x) < cmplx.Abs(y) {
		base, offset = y, x
	}

	// Zero offset: the series is a single term, base^alpha.
	if offset == 0 {
		diag := Diagnostics{Path: PathSeries, Converged: true, Base: base}
		return powPrincipal(base, alpha), diag, nil
	}

	z := offset / base
	absZ := cmplx.Abs(z)

	// Convergence-zone decision, made before entering the loop: at or
	// beyond the boundary (including |x| == |y|, where |z| == 1) the
	// series would converge too slowly or not at all.
	if absZ > opts.BoundaryThreshold {
		diag := Diagnostics{Path: PathFallback, Converged: true, UsedFallback: true, Z: z, Base: base, Offset: offset}
		return fallback(sum, alpha), diag, nil
	}

	value, diag := sumSeries(base, offset, z, absZ, alpha, opts)
	return value, diag, nil
}

// sumSeries evaluates base^alpha * sum_k C(alpha,k) z^k with the
// generalized binomial coefficients computed incrementally:
//
//	term_0 = 1
//	term_k = term_{k-1} * (alpha - k + 1)/k * z
//
// Iteration stops on relative convergence (|term| < Tolerance*|sum|), on an
// absolute floor, or on budget exhaustion. Exhaustion is not an error: the
// best partial sum is returned with Converged=false in the diagnostics.
func sumSeries(base, offset, z complex128, absZ float64, alpha complex128, opts Options) (complex128, Diagnostics) {
	maxTerms := opts.effectiveMaxTerms(absZ)

	partial := complex(1, 0)
	term := complex(1, 0)
	converged := false
	termsUsed := 0
	lastTermAbs := 0.0

	for k := 1; k <= maxTerms; k++ {
		term *= (alpha - complex(float64(k-1), 0)) * z / complex(float64(k), 0)
		partial += term
		termsUsed = k
		lastTermAbs = cmplx.Abs(term)
		if lastTermAbs < opts.Tolerance*cmplx.Abs(partial) || lastTermAbs < absoluteTermFloor {
			converged = true
			break
		}
	}

	diag := Diagnostics{
		Path:        PathSeries,
		TermsUsed:   termsUsed,
		Converged:   converged,
		LastTermAbs: lastTermAbs,
		Z:           z,
		Base:        base,
		Offset:      offset,
	}
	return powPrincipal(base, alpha) * partial, diag
}

// powPrincipal computes base^alpha via the exponential-of-logarithm
// formulation on the principal branch. This is the one place log-exp is
// unconditionally trusted: preconditioning guarantees base is the
// larger-magnitude operand and the odd-root special case has already
// intercepted ambiguous negative real bases.
func powPrincipal(base, alpha complex128) complex128 {
	return cmplx.Exp(alpha * cmplx.Log(base))
}

// fallback computes the full expression on the principal branch. O(1).
func fallback(sum, alpha complex128) complex128 {
	return cmplx.Exp(alpha * cmplx.Log(sum))
}

func isReal(z complex128) bool { return imag(z) == 0 }
