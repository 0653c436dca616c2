package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/solidstreak/streak-cli/internal/colors"
	"github.com/solidstreak/streak-cli/internal/i18n"
)

// NewHabitForm builds the add/edit form. The same form serves both; the
// caller preloads fm for edits.
func NewHabitForm(fm *HabitFormModel, lang string) *huh.Form {
	colorOptions := make([]huh.Option[string], len(colors.Palette))
	for i, c := range colors.Palette {
		colorOptions[i] = huh.NewOption(c.Name, c.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(i18n.T(lang, "form.title")).
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("%s", i18n.T(lang, "form.title.empty"))
					}
					return nil
				}),
			huh.NewInput().
				Title(i18n.T(lang, "form.description")).
				Value(&fm.Description),
			huh.NewSelect[string]().
				Title(i18n.T(lang, "form.color")).
				Options(colorOptions...).
				Value(&fm.Color),
			huh.NewConfirm().
				Title(i18n.T(lang, "form.public")).
				Value(&fm.Public),
		),
	).WithTheme(huh.ThemeDracula())
}
