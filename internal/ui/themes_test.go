package ui

import "testing"

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	cases := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tc := range cases {
		SetTheme(tc.name)
		if got := GetCurrentTheme().Name; got != tc.want {
			t.Errorf("SetTheme(%q): expected theme %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestInitThemeRespectsNoColorFlag(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("Expected no-color theme, got %q", GetCurrentTheme().Name)
	}
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("No-color theme should produce empty escape codes")
	}
}

func TestInitThemeRespectsNoColorEnv(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("Expected no-color theme with NO_COLOR set, got %q", GetCurrentTheme().Name)
	}
}
