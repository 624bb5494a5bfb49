package orchestration

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/binomcalc/internal/binomial"
	"github.com/agbru/binomcalc/internal/cli"
	apperrors "github.com/agbru/binomcalc/internal/errors"
	"github.com/agbru/binomcalc/internal/parallel"
)

// PointResult encapsulates the outcome of evaluating a single point.
// It serves as a standardized container for batch reporting.
type PointResult struct {
	// Point is the evaluated expression.
	Point Point
	// Value is the evaluation result. Only meaningful when Err is nil.
	Value complex128
	// Diag carries the evaluation diagnostics.
	Diag binomial.Diagnostics
	// Duration is the time taken to evaluate the point.
	Duration time.Duration
	// Err contains any error that occurred during the evaluation.
	Err error
}

// EvaluateBatch evaluates all points concurrently with a bounded worker
// pool and coordinates the display of progress updates.
//
// Pole errors on individual points are soft: they are recorded in the
// corresponding PointResult and do not stop the batch. Context
// cancellation stops the batch and is returned as the function error.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - points: The points to evaluate.
//   - evaluator: The configured evaluator shared by all workers.
//   - workers: The worker pool size (0 selects one worker per CPU).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []PointResult: One result per point, in input order.
//   - error: The context error if the batch was interrupted, nil otherwise.
func EvaluateBatch(ctx context.Context, points []Point, evaluator *binomial.Evaluator, workers int, out io.Writer) ([]PointResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	results := make([]PointResult, len(points))
	doneChan := make(chan struct{}, len(points))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayBatchProgress(&displayWg, doneChan, len(points), out)

	var ec parallel.ErrorCollector
	for i, p := range points {
		idx, point := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				ec.SetError(err)
				results[idx] = PointResult{Point: point, Err: err}
				return err
			}
			startTime := time.Now()
			value, diag, err := evaluator.Evaluate(point.X, point.Y, point.Alpha)
			results[idx] = PointResult{
				Point: point, Value: value, Diag: diag, Duration: time.Since(startTime), Err: err,
			}
			doneChan <- struct{}{}
			return nil
		})
	}

	g.Wait()
	close(doneChan)
	displayWg.Wait()

	return results, ec.Err()
}

// Summarize processes the results of a batch and writes a summary report.
//
// It displays a per-point table, aggregates counts per evaluation path, and
// determines the global exit code: the batch succeeds when every point
// either evaluated cleanly or failed on a documented pole.
//
// Parameters:
//   - results: The batch results to analyze.
//   - batchErr: The error returned by EvaluateBatch, if any.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func Summarize(results []PointResult, batchErr error, out io.Writer) int {
	fmt.Fprintf(out, "\n--- Batch Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sExpression%s\t%sResult%s\t%sPath%s\t%sTerms%s\t%sDuration%s\n",
		cli.ColorUnderline(), cli.ColorReset(),
		cli.ColorUnderline(), cli.ColorReset(),
		cli.ColorUnderline(), cli.ColorReset(),
		cli.ColorUnderline(), cli.ColorReset(),
		cli.ColorUnderline(), cli.ColorReset())

	pathCounts := make(map[binomial.Path]int)
	nonConverged := 0
	failures := 0
	var firstErr error

	for _, res := range results {
		if res.Err != nil {
			failures++
			if firstErr == nil {
				firstErr = res.Err
			}
			fmt.Fprintf(tw, "%s%s%s\t%s❌ %v%s\t\t\t\n",
				cli.ColorBlue(), res.Point, cli.ColorReset(),
				cli.ColorRed(), res.Err, cli.ColorReset())
			continue
		}
		pathCounts[res.Diag.Path]++
		value := cli.FormatComplex(res.Value, -1)
		if !res.Diag.Converged {
			nonConverged++
			value += " " + cli.ColorYellow() + "(not converged)" + cli.ColorReset()
		}
		duration := cli.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(tw, "%s%s%s\t%s%s%s\t%s\t%d\t%s%s%s\n",
			cli.ColorBlue(), res.Point, cli.ColorReset(),
			cli.ColorGreen(), value, cli.ColorReset(),
			res.Diag.Path, res.Diag.TermsUsed,
			cli.ColorYellow(), duration, cli.ColorReset())
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	fmt.Fprintf(out, "\nPaths:")
	for _, path := range []binomial.Path{binomial.PathDegenerate, binomial.PathRealRoot, binomial.PathSeries, binomial.PathFallback} {
		if count := pathCounts[path]; count > 0 {
			fmt.Fprintf(out, " %s=%d", path, count)
		}
	}
	fmt.Fprintf(out, "  Poles: %d  Non-converged: %d\n", failures, nonConverged)

	if batchErr != nil {
		fmt.Fprintf(out, "\nGlobal Status: Interrupted. The batch did not run to completion.\n")
		return apperrors.HandleEvaluationError(batchErr, 0, out, cli.CLIColorProvider{})
	}
	if failures == len(results) && len(results) > 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No point could be evaluated.\n")
		return apperrors.HandleEvaluationError(firstErr, 0, out, cli.CLIColorProvider{})
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. %d/%d points evaluated.\n", len(results)-failures, len(results))
	return apperrors.ExitSuccess
}
