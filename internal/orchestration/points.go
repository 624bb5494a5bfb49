// Package orchestration coordinates the concurrent evaluation of batches of
// binomial expressions and summarizes their outcomes.
package orchestration

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/binomcalc/internal/cli"
	apperrors "github.com/agbru/binomcalc/internal/errors"
)

// Point is one expression (x + y)^alpha to evaluate.
type Point struct {
	X     complex128
	Y     complex128
	Alpha complex128
}

// String renders the point as the expression it denotes.
func (p Point) String() string {
	return fmt.Sprintf("(%s + %s)^%s",
		cli.FormatComplex(p.X, -1), cli.FormatComplex(p.Y, -1), cli.FormatComplex(p.Alpha, -1))
}

// ReadPoints parses a batch input stream into evaluation points.
//
// The format is line oriented: each non-empty line carries three
// whitespace-separated complex literals "x y alpha". Blank lines and lines
// starting with '#' are ignored.
//
// Parameters:
//   - r: The input stream.
//
// Returns:
//   - []Point: The parsed points, in input order.
//   - error: A ValidationError naming the offending line on malformed input.
func ReadPoints(r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, apperrors.NewValidationError("batch",
				fmt.Sprintf("line %d: expected 'x y alpha', got %d fields", lineNo, len(fields)), line)
		}
		x, err := cli.ParseComplexArg(fmt.Sprintf("batch line %d: x", lineNo), fields[0])
		if err != nil {
			return nil, err
		}
		y, err := cli.ParseComplexArg(fmt.Sprintf("batch line %d: y", lineNo), fields[1])
		if err != nil {
			return nil, err
		}
		alpha, err := cli.ParseComplexArg(fmt.Sprintf("batch line %d: alpha", lineNo), fields[2])
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: x, Y: y, Alpha: alpha})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return points, nil
}

// GridPoints builds the cartesian product of the operand and exponent
// slices, in row-major order (x varies slowest, alpha fastest). It is a
// convenience for sweeping a region of the parameter space.
func GridPoints(xs, ys, alphas []complex128) []Point {
	points := make([]Point, 0, len(xs)*len(ys)*len(alphas))
	for _, x := range xs {
		for _, y := range ys {
			for _, alpha := range alphas {
				points = append(points, Point{X: x, Y: y, Alpha: alpha})
			}
		}
	}
	return points
}
