// Package cli command-line interface utilities. This file contains parsing
// helpers for complex-number arguments.
package cli

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/binomcalc/internal/errors"
)

// ParseComplexArg parses a complex literal supplied on the command line.
// It accepts the Go complex literal syntax understood by strconv
// ("2", "-1.5", "3i", "2+3i", "1e3-2.5i") and trims surrounding whitespace.
//
// Parameters:
//   - name: The argument name, used in error messages.
//   - value: The literal to parse.
//
// Returns:
//   - complex128: The parsed value.
//   - error: A ValidationError if the literal is malformed.
func ParseComplexArg(name, value string) (complex128, error) {
	c, err := strconv.ParseComplex(strings.TrimSpace(value), 128)
	if err != nil {
		return 0, apperrors.NewValidationError(name, "must be a complex literal such as '2', '3i' or '2+3i'", value)
	}
	return c, nil
}

// FormatComplex renders a complex value compactly: purely real values print
// as a plain float, everything else in "a+bi" form.
//
// Parameters:
//   - c: The value to format.
//   - precision: The number of significant digits (-1 for the shortest
//     representation that round-trips).
//
// Returns:
//   - string: The formatted value.
func FormatComplex(c complex128, precision int) string {
	re := strconv.FormatFloat(real(c), 'g', precision, 64)
	if imag(c) == 0 {
		return re
	}
	im := strconv.FormatFloat(imag(c), 'g', precision, 64)
	if imag(c) > 0 {
		return re + "+" + im + "i"
	}
	return re + im + "i"
}
