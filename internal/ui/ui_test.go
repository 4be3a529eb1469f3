package ui

import (
	"strings"
	"testing"
)

// Tests here mutate the global theme and therefore do not run in parallel.

func TestSetTheme(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) selected %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	InitTheme(true)
	if ColorsEnabled() {
		t.Error("InitTheme(true) should disable colors")
	}

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if ColorsEnabled() {
		t.Error("NO_COLOR should disable colors")
	}
}

func TestColorAccessors(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	SetCurrentTheme(DarkTheme)
	if ColorRed() != DarkTheme.Error || ColorGreen() != DarkTheme.Success || ColorReset() != "\033[0m" {
		t.Error("accessors should follow the dark theme")
	}

	SetCurrentTheme(NoColorTheme)
	for _, c := range []string{ColorReset(), ColorBold(), ColorUnderline(), ColorRed(), ColorGreen(), ColorYellow(), ColorBlue(), ColorMagenta(), ColorCyan(), ColorGrey()} {
		if c != "" {
			t.Errorf("no-color theme should produce empty codes, got %q", c)
		}
	}
}

func TestVerdictStyles_NoColor(t *testing.T) {
	saved := GetCurrentTheme()
	defer SetCurrentTheme(saved)

	SetCurrentTheme(NoColorTheme)
	if CurrentPalette() != NoColorPalette {
		t.Error("no-color theme should select the no-color palette")
	}
	out := NewVerdictStyles().Box.Render("TRUSTWORTHY")
	if !strings.Contains(out, "TRUSTWORTHY") || strings.Contains(out, "\033[") {
		t.Errorf("unexpected render: %q", out)
	}
}
