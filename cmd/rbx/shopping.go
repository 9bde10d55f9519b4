package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping [id-or-position...]",
	Short: "Generate a combined shopping list",
	Long: `Combine the ingredients of the chosen recipes into one shopping list.
Ingredient names are matched case-insensitively; quantities are listed as
entered, never summed or converted.

With no arguments, recipes are chosen interactively.`,
	Example: `  rbx shopping 1 3
  rbx shopping`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var ids []string
		if len(args) == 0 {
			var err error
			ids, err = selectRecipeIDsForm()
			if err != nil || ids == nil {
				return err
			}
		} else {
			for _, arg := range args {
				r, err := resolveRecipe(manager, arg)
				if err != nil {
					return err
				}
				ids = append(ids, r.ID)
			}
		}

		fmt.Println(manager.ShoppingList(ids).Format())
		return nil
	},
}

// selectRecipeIDsForm shows a multi-select over all recipes. Returns nil with
// no error when the user aborts or nothing exists to select.
func selectRecipeIDsForm() ([]string, error) {
	all := manager.All()
	if len(all) == 0 {
		fmt.Println("No recipes to choose from.")
		return nil, nil
	}

	options := make([]huh.Option[string], len(all))
	for i, r := range all {
		options[i] = huh.NewOption(r.String(), r.ID)
	}

	ids := []string{}
	sel := huh.NewMultiSelect[string]().
		Title("Recipes for the shopping list").
		Options(options...).
		Value(&ids)
	if err := sel.Run(); err != nil {
		if err == huh.ErrUserAborted {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return nil, nil
		}
		return nil, err
	}
	return ids, nil
}

func init() {
	rootCmd.AddCommand(shoppingCmd)
}
