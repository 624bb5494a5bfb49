package binomial

import (
	apperrors "github.com/agbru/binomcalc/internal/errors"
)

// Default option values.
// These can be overridden per call via the Options struct or, at the
// application level, via command-line flags and environment variables.
const (
	// DefaultMaxTerms is the default ceiling on series iterations.
	DefaultMaxTerms = 1000
	// DefaultTolerance is the default relative convergence tolerance,
	// close to machine epsilon for complex128 arithmetic.
	DefaultTolerance = 1e-14
	// DefaultBoundaryThreshold is the default |z| ratio above which the
	// series is considered too slow and the log-exp fallback is used.
	DefaultBoundaryThreshold = 0.90
	// DefaultMaxDenominator bounds the continued-fraction reconstruction
	// of the exponent when checking for real odd roots.
	DefaultMaxDenominator = 1000
	// DefaultRationalTolerance is how close the exponent must be to a
	// reconstructed fraction for the odd-root special case to fire.
	DefaultRationalTolerance = 1e-9
)

const (
	// slowConvergenceZone marks the |z| ratio beyond which the series
	// still converges but slowly enough to deserve an extended term budget.
	slowConvergenceZone = 0.75
	// extendedBudgetFactor multiplies MaxTerms inside the slow zone.
	extendedBudgetFactor = 3
	// absoluteTermFloor stops the summation once a term is negligible in
	// absolute value, independent of the relative tolerance.
	absoluteTermFloor = 1e-14
)

// Options controls a single evaluation. The zero value is not usable;
// start from DefaultOptions and override fields as needed.
type Options struct {
	// MaxTerms is the hard ceiling on series iterations. The series path
	// terminates in at most MaxTerms steps (extended near the convergence
	// boundary, see BoundaryThreshold).
	MaxTerms int
	// Tolerance is the relative convergence tolerance: iteration stops
	// once |term| < Tolerance * |sum|.
	Tolerance float64
	// BoundaryThreshold is the |z| magnitude above which the series path
	// is abandoned in favor of the log-exp fallback. Must lie in (0, 1).
	BoundaryThreshold float64
	// MaxDenominator bounds the denominator of the rational
	// reconstruction of the exponent for the real odd-root special case.
	MaxDenominator int64
	// RationalTolerance is the acceptance bound for that reconstruction:
	// the exponent must be within this distance of num/den.
	RationalTolerance float64
}

// DefaultOptions returns the standard evaluation options.
func DefaultOptions() Options {
	return Options{
		MaxTerms:          DefaultMaxTerms,
		Tolerance:         DefaultTolerance,
		BoundaryThreshold: DefaultBoundaryThreshold,
		MaxDenominator:    DefaultMaxDenominator,
		RationalTolerance: DefaultRationalTolerance,
	}
}

// Validate checks the semantic consistency of the options.
// It is called at evaluation entry, before any computation.
//
// Returns:
//   - error: A ValidationError describing the first invalid field, or nil.
func (o Options) Validate() error {
	if o.MaxTerms <= 0 {
		return apperrors.NewValidationError("max_terms", "must be a positive integer", o.MaxTerms)
	}
	if o.Tolerance <= 0 {
		return apperrors.NewValidationError("tolerance", "must be a positive real", o.Tolerance)
	}
	if o.BoundaryThreshold <= 0 || o.BoundaryThreshold >= 1 {
		return apperrors.NewValidationError("boundary_threshold", "must lie strictly between 0 and 1", o.BoundaryThreshold)
	}
	if o.MaxDenominator <= 0 {
		return apperrors.NewValidationError("max_denominator", "must be a positive integer", o.MaxDenominator)
	}
	if o.RationalTolerance <= 0 {
		return apperrors.NewValidationError("rational_tolerance", "must be a positive real", o.RationalTolerance)
	}
	return nil
}

// effectiveMaxTerms returns the term budget for a given series ratio
// magnitude. Ratios in the slow-convergence zone get an extended budget so
// that legitimate but slow series are not reported as non-converged.
func (o Options) effectiveMaxTerms(absZ float64) int {
	if absZ > slowConvergenceZone {
		return o.MaxTerms * extendedBudgetFactor
	}
	return o.MaxTerms
}
