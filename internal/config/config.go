// Package config provides the configuration management for the binomcalc
// application. It defines the configuration structure, parses command-line
// arguments with environment variable overrides, and validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/agbru/binomcalc/internal/binomial"
	apperrors "github.com/agbru/binomcalc/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by binomcalc.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "BINOMCALC_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultX is the default first operand.
	DefaultX = "1"
	// DefaultY is the default second operand.
	DefaultY = "8"
	// DefaultAlpha is the default exponent (a cube root).
	DefaultAlpha = "0.3333333333333333"
	// DefaultTimeout is the default evaluation timeout.
	DefaultTimeout = 1 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultWorkers is the default batch worker count (0 means GOMAXPROCS).
	DefaultWorkers = 0
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It covers the operands of the expression to
// evaluate, the numerical knobs of the series evaluator, and the output and
// execution modes.
type AppConfig struct {
	// X is the first operand, as a Go complex literal (e.g. "1", "2+3i").
	X string
	// Y is the second operand, as a Go complex literal.
	Y string
	// Alpha is the exponent, as a Go complex literal.
	Alpha string

	// MaxTerms bounds the number of series terms per evaluation.
	MaxTerms int
	// Tolerance is the relative convergence tolerance of the series.
	Tolerance float64
	// Boundary is the |z| ratio above which the evaluator switches to the
	// logarithmic fallback.
	Boundary float64
	// MaxDenominator bounds the denominators considered when deciding
	// whether an exponent is an odd root.
	MaxDenominator int64
	// RationalTol is the tolerance of the rational reconstruction of the
	// exponent.
	RationalTol float64

	// Info, if true, displays the evaluation diagnostics alongside the result.
	Info bool
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses spinners, banners, and informational messages.
	Quiet bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string

	// BatchFile, if specified, is a file of evaluation points (one
	// "x y alpha" triple per line) to evaluate concurrently.
	BatchFile string
	// Workers is the number of concurrent workers in batch mode.
	// Zero selects one worker per CPU.
	Workers int
	// Timeout sets the maximum duration for the evaluation run.
	Timeout time.Duration

	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
}

// ToEvaluationOptions converts the application configuration into
// binomial.Options for use by the evaluator.
func (c AppConfig) ToEvaluationOptions() binomial.Options {
	return binomial.Options{
		MaxTerms:          c.MaxTerms,
		Tolerance:         c.Tolerance,
		BoundaryThreshold: c.Boundary,
		MaxDenominator:    c.MaxDenominator,
		RationalTolerance: c.RationalTol,
	}
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures the operands are valid complex literals and the numerical knobs
// are within valid ranges.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	for _, operand := range []struct {
		name  string
		value string
	}{
		{"x", c.X},
		{"y", c.Y},
		{"alpha", c.Alpha},
	} {
		if _, err := strconv.ParseComplex(operand.value, 128); err != nil {
			return apperrors.NewConfigError("invalid complex literal for -%s: %q", operand.name, operand.value)
		}
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("worker count cannot be negative: %d", c.Workers)
	}
	if err := c.ToEvaluationOptions().Validate(); err != nil {
		return apperrors.NewConfigError("invalid evaluation options: %v", err)
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// applies environment variable overrides for flags not explicitly set, and
// validates the resulting configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.X, "x", DefaultX, "First operand, as a complex literal (e.g. '2+3i').")
	fs.StringVar(&config.Y, "y", DefaultY, "Second operand, as a complex literal.")
	fs.StringVar(&config.Alpha, "alpha", DefaultAlpha, "Exponent, as a complex literal.")
	fs.StringVar(&config.Alpha, "a", DefaultAlpha, "Exponent (shorthand).")

	fs.IntVar(&config.MaxTerms, "max-terms", binomial.DefaultMaxTerms, "Maximum number of series terms per evaluation.")
	fs.Float64Var(&config.Tolerance, "tolerance", binomial.DefaultTolerance, "Relative convergence tolerance of the series.")
	fs.Float64Var(&config.Boundary, "boundary", binomial.DefaultBoundaryThreshold, "Ratio |z| above which the logarithmic fallback is used.")
	fs.Int64Var(&config.MaxDenominator, "max-denominator", binomial.DefaultMaxDenominator, "Largest denominator considered when detecting odd roots.")
	fs.Float64Var(&config.RationalTol, "rational-tolerance", binomial.DefaultRationalTolerance, "Tolerance of the rational reconstruction of the exponent.")

	fs.BoolVar(&config.Info, "info", false, "Display evaluation diagnostics (path, terms, convergence).")
	fs.BoolVar(&config.Info, "i", false, "Display evaluation diagnostics (shorthand).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")

	fs.StringVar(&config.BatchFile, "batch", "", "File of 'x y alpha' triples to evaluate concurrently.")
	fs.IntVar(&config.Workers, "workers", DefaultWorkers, "Concurrent workers in batch mode (0 = one per CPU).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the evaluation run.")

	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
