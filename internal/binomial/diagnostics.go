package binomial

// Path identifies which evaluation branch produced the final value.
// Exactly one branch executes per call.
type Path string

const (
	// PathDegenerate covers the exact-zero cases: alpha == 0 (result 1 by
	// the 0^0 convention) and x+y == 0 with positive real exponent (result 0).
	PathDegenerate Path = "degenerate"
	// PathRealRoot is the negative real base with an odd-denominator
	// rational exponent, resolved to the mathematically correct real root.
	PathRealRoot Path = "real-root"
	// PathSeries is the preconditioned binomial series summation.
	PathSeries Path = "series"
	// PathFallback is the exp(alpha*log(x+y)) principal-branch formulation.
	PathFallback Path = "fallback"
)

// Diagnostics exposes the internal state of one evaluation. It replaces the
// side-channel warnings of earlier designs with an observable, testable
// record: slow or non-convergence is never an error, only disclosed here.
type Diagnostics struct {
	// Path is the branch that produced the result.
	Path Path
	// TermsUsed is the number of series iterations performed.
	// It is zero for every non-series path and for trivial series
	// (zero offset) that terminate before the first iteration.
	TermsUsed int
	// Converged reports whether the series met the relative tolerance
	// within the term budget. It is true on all non-series paths.
	Converged bool
	// UsedFallback reports whether the log-exp formulation produced the
	// result instead of the series.
	UsedFallback bool
	// LastTermAbs is the magnitude of the last series term computed.
	// Zero when the series path was not taken.
	LastTermAbs float64
	// Z is the series ratio offset/base. Zero when no ratio was formed.
	Z complex128
	// Base is the larger-magnitude operand chosen by preconditioning.
	Base complex128
	// Offset is the smaller-magnitude operand.
	Offset complex128
}
