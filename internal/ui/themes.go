// Package ui provides terminal color themes for the presentation layers.
// Packages that print to the terminal depend on it instead of hardcoding
// ANSI escape sequences, which keeps styling consistent and centrally
// switchable.
package ui

import (
	"os"
	"sync"
)

// Theme groups the ANSI escape codes used for one color scheme.
type Theme struct {
	// Name identifies the theme.
	Name string
	// Primary is the main accent color for prominent values.
	Primary string
	// Secondary is used for supporting detail.
	Secondary string
	// Success marks positive outcomes.
	Success string
	// Warning marks degraded but non-fatal outcomes, such as a series
	// that stopped before converging.
	Warning string
	// Error marks failures.
	Error string
	// Info is used for informational annotations.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme targets dark terminal backgrounds with bright colors.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme targets light terminal backgrounds with darker colors.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all styling. Selected when NO_COLOR is set
	// or the -no-color flag is given.
	NoColorTheme = Theme{
		Name: "none",
	}

	// currentTheme is the theme in effect for the whole process.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Primarily used by tests to
// restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme selects the active theme by name. Valid names are "dark",
// "light" and "none"; unknown names fall back to the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "dark":
		currentTheme = DarkTheme
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme selects the theme from the noColor flag and the environment.
// It honors the NO_COLOR convention (https://no-color.org/): any value of
// the NO_COLOR variable disables styling.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
