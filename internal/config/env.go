// Package config provides the configuration management for the binomcalc
// application. This file contains environment variable utilities for
// configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int, or the default value if not set
// or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt64 returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int64, or the default value if not set
// or invalid.
func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvFloat returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as float64, or the default value if not set
// or invalid.
func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as bool, or the default value if not set.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as time.Duration, or the default value
// if not set or invalid. Accepts formats like "5m", "30s", "1h30m".
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables:
//   - BINOMCALC_X: First operand, as a complex literal (string)
//   - BINOMCALC_Y: Second operand, as a complex literal (string)
//   - BINOMCALC_ALPHA: Exponent, as a complex literal (string)
//   - BINOMCALC_MAX_TERMS: Maximum series terms (int)
//   - BINOMCALC_TOLERANCE: Relative convergence tolerance (float)
//   - BINOMCALC_BOUNDARY: Fallback boundary ratio (float)
//   - BINOMCALC_MAX_DENOMINATOR: Odd-root denominator bound (int)
//   - BINOMCALC_RATIONAL_TOLERANCE: Rational reconstruction tolerance (float)
//   - BINOMCALC_PORT: Port for server mode (string)
//   - BINOMCALC_TIMEOUT: Evaluation timeout (duration: "1m", "30s")
//   - BINOMCALC_WORKERS: Batch worker count (int)
//   - BINOMCALC_BATCH: Batch input file path (string)
//   - BINOMCALC_OUTPUT: Output file path (string)
//   - BINOMCALC_SERVER: Enable server mode (bool: true/false, 1/0, yes/no)
//   - BINOMCALC_JSON: Enable JSON output (bool)
//   - BINOMCALC_INFO: Display evaluation diagnostics (bool)
//   - BINOMCALC_QUIET: Enable quiet mode (bool)
//   - BINOMCALC_NO_COLOR: Disable colored output (bool)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	applyOperandOverrides(config, fs)
	applyNumericOverrides(config, fs)
	applyStringOverrides(config, fs)
	applyBooleanOverrides(config, fs)
}

func applyOperandOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "x") {
		config.X = getEnvString("X", config.X)
	}
	if !isFlagSet(fs, "y") {
		config.Y = getEnvString("Y", config.Y)
	}
	if !isFlagSet(fs, "alpha") && !isFlagSet(fs, "a") {
		config.Alpha = getEnvString("ALPHA", config.Alpha)
	}
}

func applyNumericOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "max-terms") {
		config.MaxTerms = getEnvInt("MAX_TERMS", config.MaxTerms)
	}
	if !isFlagSet(fs, "tolerance") {
		config.Tolerance = getEnvFloat("TOLERANCE", config.Tolerance)
	}
	if !isFlagSet(fs, "boundary") {
		config.Boundary = getEnvFloat("BOUNDARY", config.Boundary)
	}
	if !isFlagSet(fs, "max-denominator") {
		config.MaxDenominator = getEnvInt64("MAX_DENOMINATOR", config.MaxDenominator)
	}
	if !isFlagSet(fs, "rational-tolerance") {
		config.RationalTol = getEnvFloat("RATIONAL_TOLERANCE", config.RationalTol)
	}
	if !isFlagSet(fs, "workers") {
		config.Workers = getEnvInt("WORKERS", config.Workers)
	}
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
}

func applyStringOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "port") {
		config.Port = getEnvString("PORT", config.Port)
	}
	if !isFlagSet(fs, "batch") {
		config.BatchFile = getEnvString("BATCH", config.BatchFile)
	}
	if !isFlagSet(fs, "output") && !isFlagSet(fs, "o") {
		config.OutputFile = getEnvString("OUTPUT", config.OutputFile)
	}
}

func applyBooleanOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "server") {
		config.ServerMode = getEnvBool("SERVER", config.ServerMode)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "info") && !isFlagSet(fs, "i") {
		config.Info = getEnvBool("INFO", config.Info)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
}
