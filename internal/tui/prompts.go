package tui

import (
	"github.com/charmbracelet/huh"
)

// Select shows a single-select prompt and returns the chosen value.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}

// Confirm shows a yes/no confirmation prompt.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&confirmed),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
