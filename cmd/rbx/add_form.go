package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// runAddForm collects a new recipe through an interactive terminal form.
//
// Keyboard navigation:
//   - Tab/Shift+Tab: move between fields
//   - Enter: submit (on the last field or submit button)
//   - Ctrl+C: cancel and exit
func runAddForm() error {
	var (
		name        string
		ingredients string
		quantities  string
		steps       string
		favorite    bool
		category    string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Recipe name (required)").
				Placeholder("e.g., Tomato Soup").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Ingredients").
				Description("Comma-separated names").
				Placeholder("e.g., tomato, onion, olive oil").
				Value(&ingredients),

			huh.NewInput().
				Title("Quantities").
				Description("Comma-separated, one per ingredient").
				Placeholder("e.g., 500g, 1, 2 tbsp").
				Value(&quantities),
		),

		huh.NewGroup(
			huh.NewText().
				Title("Steps").
				Description("Cooking instructions (optional)").
				Placeholder("Chop the onion...").
				CharLimit(5000).
				Value(&steps),

			huh.NewInput().
				Title("Category").
				Description("e.g. breakfast, dinner (optional)").
				Value(&category),

			huh.NewConfirm().
				Title("Mark as favorite?").
				Affirmative("Yes").
				Negative("No").
				Value(&favorite),
		),
	)

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			fmt.Fprintln(os.Stderr, "Recipe creation cancelled.")
			return nil
		}
		return fmt.Errorf("form error: %w", err)
	}

	parsed, err := parseIngredients(ingredients, quantities)
	if err != nil {
		return err
	}
	return createRecipe(name, parsed, steps, favorite, category)
}
