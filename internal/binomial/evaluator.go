package binomial

// Evaluator bundles a validated Options value with a set of observers.
// It exists for callers that evaluate repeatedly with the same
// configuration and want diagnostics published to logging or metrics;
// the package-level Evaluate functions stay pure and observer-free.
type Evaluator struct {
	opts      Options
	observers []EvaluationObserver
}

// EvaluatorOption is a functional option for configuring an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithObserver attaches an observer that receives the diagnostics of every
// evaluation. Multiple observers may be attached; they are notified in
// registration order.
func WithObserver(o EvaluationObserver) EvaluatorOption {
	return func(e *Evaluator) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// NewEvaluator creates an Evaluator after validating the options.
//
// Parameters:
//   - opts: The evaluation options, validated once up front.
//   - extra: Optional functional options (e.g. WithObserver).
//
// Returns:
//   - *Evaluator: The configured evaluator.
//   - error: A ValidationError if the options are invalid.
func NewEvaluator(opts Options, extra ...EvaluatorOption) (*Evaluator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e := &Evaluator{opts: opts}
	for _, opt := range extra {
		opt(e)
	}
	return e, nil
}

// Options returns the evaluator's configuration.
func (e *Evaluator) Options() Options { return e.opts }

// Evaluate computes (x + y)^alpha with the evaluator's options and
// publishes the resulting diagnostics to all attached observers.
// Observers are notified even for pole errors (the diagnostics then carry
// the degenerate path), but not for configuration errors.
func (e *Evaluator) Evaluate(x, y, alpha complex128) (complex128, Diagnostics, error) {
	value, diag, err := evaluate(x, y, alpha, e.opts)
	if err == nil || diag.Path != "" {
		for _, o := range e.observers {
			o.Observe(diag)
		}
	}
	return value, diag, err
}
