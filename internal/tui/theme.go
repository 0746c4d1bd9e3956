package tui

import (
	"github.com/charmbracelet/huh"
)

// currentTheme holds the currently configured theme for TUI components.
// When nil, currentThemeOrDefault() returns the default cargodex theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// If the name is invalid or empty, the cargodex theme is used.
func SetTheme(name string) {
	if name == "" {
		currentTheme = nil
		return
	}
	currentTheme = GetTheme(name)
}

// currentThemeOrDefault returns the current theme for TUI components.
// Returns the cargodex theme if no theme has been set.
func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return cargodexTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default (cargodex).
// This is primarily useful for testing.
func resetTheme() {
	currentTheme = nil
}
