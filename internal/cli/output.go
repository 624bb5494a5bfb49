// Package cli command-line interface utilities. This file contains output
// formatting for presenting and exporting evaluation results.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/cmplx"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/agbru/binomcalc/internal/binomial"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// JSONOutput renders the result as a JSON document.
	JSONOutput bool
	// Quiet mode suppresses everything but the value.
	Quiet bool
	// Info includes the evaluation diagnostics in the output.
	Info bool
}

// EvaluationReport is the JSON document describing one evaluation.
type EvaluationReport struct {
	X            string  `json:"x"`
	Y            string  `json:"y"`
	Alpha        string  `json:"alpha"`
	Result       string  `json:"result"`
	Real         float64 `json:"real"`
	Imag         float64 `json:"imag"`
	Path         string  `json:"path"`
	TermsUsed    int     `json:"terms_used"`
	Converged    bool    `json:"converged"`
	UsedFallback bool    `json:"used_fallback"`
	AbsZ         float64 `json:"abs_z"`
	DurationMs   float64 `json:"duration_ms"`
}

// NewEvaluationReport assembles the JSON report for one evaluation.
func NewEvaluationReport(x, y, alpha, value complex128, diag binomial.Diagnostics, duration time.Duration) EvaluationReport {
	return EvaluationReport{
		X:            FormatComplex(x, -1),
		Y:            FormatComplex(y, -1),
		Alpha:        FormatComplex(alpha, -1),
		Result:       FormatComplex(value, -1),
		Real:         real(value),
		Imag:         imag(value),
		Path:         string(diag.Path),
		TermsUsed:    diag.TermsUsed,
		Converged:    diag.Converged,
		UsedFallback: diag.UsedFallback,
		AbsZ:         cmplx.Abs(diag.Z),
		DurationMs:   float64(duration.Microseconds()) / 1000.0,
	}
}

// DisplayResult formats and prints an evaluation result, optionally followed
// by the diagnostics table when info is requested.
//
// Parameters:
//   - out: The io.Writer for the output.
//   - x, y, alpha: The evaluated expression.
//   - value: The evaluation result.
//   - diag: The evaluation diagnostics.
//   - duration: The time taken for the evaluation.
//   - info: If true, prints the diagnostics table.
func DisplayResult(out io.Writer, x, y, alpha, value complex128, diag binomial.Diagnostics, duration time.Duration, info bool) {
	fmt.Fprintf(out, "(%s%s%s + %s%s%s)^%s%s%s = %s%s%s\n",
		ColorMagenta(), FormatComplex(x, -1), ColorReset(),
		ColorMagenta(), FormatComplex(y, -1), ColorReset(),
		ColorMagenta(), FormatComplex(alpha, -1), ColorReset(),
		ColorGreen(), FormatComplex(value, -1), ColorReset())

	if !diag.Converged {
		fmt.Fprintf(out, "%sWarning: the series stopped before converging; the result is a best effort.%s\n",
			ColorYellow(), ColorReset())
	}
	if !info {
		return
	}

	fmt.Fprintf(out, "\n%s--- Evaluation diagnostics ---%s\n", ColorBold(), ColorReset())
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "Path\t%s%s%s\n", ColorCyan(), diag.Path, ColorReset())
	fmt.Fprintf(tw, "Terms used\t%s%d%s\n", ColorCyan(), diag.TermsUsed, ColorReset())
	fmt.Fprintf(tw, "Converged\t%s%t%s\n", ColorCyan(), diag.Converged, ColorReset())
	fmt.Fprintf(tw, "Used fallback\t%s%t%s\n", ColorCyan(), diag.UsedFallback, ColorReset())
	fmt.Fprintf(tw, "Base\t%s%s%s\n", ColorCyan(), FormatComplex(diag.Base, -1), ColorReset())
	fmt.Fprintf(tw, "Offset\t%s%s%s\n", ColorCyan(), FormatComplex(diag.Offset, -1), ColorReset())
	fmt.Fprintf(tw, "|z|\t%s%.6g%s\n", ColorCyan(), cmplx.Abs(diag.Z), ColorReset())
	fmt.Fprintf(tw, "Duration\t%s%s%s\n", ColorCyan(), FormatExecutionDuration(duration), ColorReset())
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
// It prints a single line suitable for scripting.
//
// Parameters:
//   - out: The output writer.
//   - value: The evaluation result.
func DisplayQuietResult(out io.Writer, value complex128) {
	fmt.Fprintln(out, FormatComplex(value, -1))
}

// WriteResultToFile writes an evaluation result to a file.
//
// Parameters:
//   - report: The evaluation report to write.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(report EvaluationReport, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if config.JSONOutput {
		enc := json.NewEncoder(file)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(file, "# Binomial Evaluation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Path: %s\n", report.Path)
	fmt.Fprintf(file, "# Terms: %d\n", report.TermsUsed)
	fmt.Fprintf(file, "# Converged: %t\n", report.Converged)
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "(%s + %s)^%s =\n%s\n", report.X, report.Y, report.Alpha, report.Result)
	return nil
}

// DisplayResultWithConfig displays a result with the given output
// configuration. This is the unified entry point handling all output modes.
//
// Parameters:
//   - out: The output writer.
//   - x, y, alpha: The evaluated expression.
//   - value: The evaluation result.
//   - diag: The evaluation diagnostics.
//   - duration: The evaluation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, x, y, alpha, value complex128, diag binomial.Diagnostics, duration time.Duration, config OutputConfig) error {
	report := NewEvaluationReport(x, y, alpha, value, diag, duration)

	switch {
	case config.JSONOutput:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	case config.Quiet:
		DisplayQuietResult(out, value)
	default:
		DisplayResult(out, x, y, alpha, value, diag, duration, config.Info)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(report, config); err != nil {
			return err
		}
		if !config.Quiet && !config.JSONOutput {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ColorGreen(), ColorCyan(), config.OutputFile, ColorReset())
		}
	}

	return nil
}
