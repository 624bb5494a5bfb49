package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agbru/binomcalc/internal/binomial"
	"github.com/agbru/binomcalc/internal/cli"
	"github.com/agbru/binomcalc/internal/config"
	apperrors "github.com/agbru/binomcalc/internal/errors"
	"github.com/agbru/binomcalc/internal/logging"
	"github.com/agbru/binomcalc/internal/orchestration"
	"github.com/agbru/binomcalc/internal/server"
	"github.com/agbru/binomcalc/internal/ui"
)

// Application represents the binomcalc application instance.
// It encapsulates the configuration and provides methods to run
// the application in its various modes (single evaluation, batch, server).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := "binomcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// It dispatches to the appropriate handler (server, batch, or single
// evaluation).
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects -no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	// Server mode
	if a.Config.ServerMode {
		return a.runServer()
	}

	// Batch mode
	if a.Config.BatchFile != "" {
		return a.runBatch(ctx, out)
	}

	// Standard single-expression evaluation mode
	return a.runEvaluate(ctx, out)
}

// runServer starts the HTTP server mode. The server's evaluator publishes
// its diagnostics to the Prometheus and logging observers.
func (a *Application) runServer() int {
	logger := logging.NewLogger(os.Stderr, "evaluator")
	evaluator, err := binomial.NewEvaluator(a.Config.ToEvaluationOptions(),
		binomial.WithObserver(binomial.NewMetricsObserver()),
		binomial.WithObserver(binomial.NewLoggingObserver(logger.Zerolog())),
	)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	srv := server.NewServer(evaluator, a.Config)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runEvaluate evaluates the single expression given by the -x, -y and -alpha
// flags.
func (a *Application) runEvaluate(ctx context.Context, out io.Writer) int {
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	x, y, alpha, code := a.parseOperands()
	if code != apperrors.ExitSuccess {
		return code
	}

	evaluator, err := binomial.NewEvaluator(a.Config.ToEvaluationOptions())
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	start := time.Now()
	value, diag, err := evaluator.Evaluate(x, y, alpha)
	duration := time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return apperrors.HandleEvaluationError(ctxErr, duration, out, cli.CLIColorProvider{})
	}
	if err != nil {
		return apperrors.HandleEvaluationError(err, duration, out, cli.CLIColorProvider{})
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		JSONOutput: a.Config.JSONOutput,
		Quiet:      a.Config.Quiet,
		Info:       a.Config.Info,
	}
	if err := cli.DisplayResultWithConfig(out, x, y, alpha, value, diag, duration, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// parseOperands converts the configured operand literals. The configuration
// already validated them, so failures here are unexpected.
func (a *Application) parseOperands() (x, y, alpha complex128, code int) {
	var err error
	if x, err = cli.ParseComplexArg("x", a.Config.X); err == nil {
		if y, err = cli.ParseComplexArg("y", a.Config.Y); err == nil {
			alpha, err = cli.ParseComplexArg("alpha", a.Config.Alpha)
		}
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return 0, 0, 0, apperrors.ExitErrorConfig
	}
	return x, y, alpha, apperrors.ExitSuccess
}

// runBatch evaluates every point of the batch file concurrently and
// summarizes the outcome.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	file, err := os.Open(a.Config.BatchFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error opening batch file: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	defer file.Close()

	points, err := orchestration.ReadPoints(file)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error reading batch file: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	if len(points) == 0 {
		fmt.Fprintf(a.ErrWriter, "Batch file contains no points\n")
		return apperrors.ExitErrorConfig
	}

	evaluator, err := binomial.NewEvaluator(a.Config.ToEvaluationOptions())
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	// In quiet and JSON modes the progress display would corrupt the output.
	progressOut := out
	if a.Config.Quiet || a.Config.JSONOutput {
		progressOut = io.Discard
	}

	results, batchErr := orchestration.EvaluateBatch(ctx, points, evaluator, a.Config.Workers, progressOut)

	if a.Config.JSONOutput {
		return printJSONResults(results, batchErr, out)
	}
	if a.Config.Quiet {
		return printQuietResults(results, batchErr, out)
	}
	return orchestration.Summarize(results, batchErr, out)
}

// jsonPointResult represents a single batch result in JSON output.
type jsonPointResult struct {
	cli.EvaluationReport
	Error string `json:"error,omitempty"`
}

// printJSONResults formats the batch results as a JSON array and writes them
// to the output. This is useful for programmatic consumption of the results.
func printJSONResults(results []orchestration.PointResult, batchErr error, out io.Writer) int {
	output := make([]jsonPointResult, len(results))
	for i, res := range results {
		jr := jsonPointResult{
			EvaluationReport: cli.NewEvaluationReport(res.Point.X, res.Point.Y, res.Point.Alpha,
				res.Value, res.Diag, res.Duration),
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		output[i] = jr
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return apperrors.ExitErrorGeneric
	}
	if batchErr != nil {
		return apperrors.HandleEvaluationError(batchErr, 0, io.Discard, nil)
	}
	return apperrors.ExitSuccess
}

// printQuietResults writes one line per point, suitable for scripting.
// Failed points print their error to keep line numbers aligned with the
// input.
func printQuietResults(results []orchestration.PointResult, batchErr error, out io.Writer) int {
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "error: %v\n", res.Err)
			continue
		}
		cli.DisplayQuietResult(out, res.Value)
	}
	if batchErr != nil {
		return apperrors.HandleEvaluationError(batchErr, 0, io.Discard, nil)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
