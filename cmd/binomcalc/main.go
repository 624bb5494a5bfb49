// Command binomcalc evaluates (x+y)^alpha for complex operands via the
// generalized binomial series, with batch and HTTP server modes.
package main

import (
	"context"
	"os"

	"github.com/agbru/binomcalc/internal/app"
	apperrors "github.com/agbru/binomcalc/internal/errors"
)

func main() {
	// Handle --version before full argument parsing so it works in any position.
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
