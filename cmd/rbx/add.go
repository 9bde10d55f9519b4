package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recipebox/rbx/internal/debug"
	"github.com/recipebox/rbx/internal/recipes"
	"github.com/recipebox/rbx/internal/types"
	"github.com/recipebox/rbx/internal/ui"
)

var (
	addName        string
	addIngredients string
	addQuantities  string
	addSteps       string
	addFavorite    bool
	addCategory    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new recipe",
	Long: `Add a new recipe.

With no flags, an interactive form is shown. With --name, the recipe is
created non-interactively; --ingredients and --quantities are parallel
comma-separated lists and must have the same number of entries.`,
	Example: `  rbx add
  rbx add --name "Tomato Soup" --ingredients "tomato,onion" --quantities "500g,1" --category dinner`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("name") {
			return runAddForm()
		}

		ingredients, err := parseIngredients(addIngredients, addQuantities)
		if err != nil {
			return err
		}
		return createRecipe(addName, ingredients, addSteps, addFavorite, addCategory)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "recipe name")
	addCmd.Flags().StringVarP(&addIngredients, "ingredients", "i", "", "comma-separated ingredient names")
	addCmd.Flags().StringVar(&addQuantities, "quantities", "", "comma-separated quantities, one per ingredient")
	addCmd.Flags().StringVarP(&addSteps, "steps", "s", "", "cooking steps (free text)")
	addCmd.Flags().BoolVarP(&addFavorite, "favorite", "f", false, "mark as favorite")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "category, e.g. breakfast")
	rootCmd.AddCommand(addCmd)
}

// parseIngredients zips the two comma-separated lists. A count mismatch is
// rejected here, at the input-collection boundary, before the manager runs.
func parseIngredients(names, quantities string) ([]types.Ingredient, error) {
	if strings.TrimSpace(names) == "" {
		return []types.Ingredient{}, nil
	}

	nameList := splitTrimmed(names)
	qtyList := splitTrimmed(quantities)
	if len(nameList) != len(qtyList) {
		return nil, fmt.Errorf("number of ingredients (%d) must match number of quantities (%d)", len(nameList), len(qtyList))
	}

	ingredients := make([]types.Ingredient, len(nameList))
	for i := range nameList {
		ingredients[i] = types.Ingredient{Name: nameList[i], Quantity: qtyList[i]}
	}
	return ingredients, nil
}

func splitTrimmed(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func createRecipe(name string, ingredients []types.Ingredient, steps string, favorite bool, category string) error {
	r, err := manager.Add(rootCtx, name, ingredients, steps, favorite, category)
	if err != nil {
		var verr *recipes.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid recipe: %w", err)
		}
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	debug.PrintNormal("%s Added recipe '%s' (%s)\n", ui.RenderPass(ui.IconPass), r.Name, ui.RenderMuted(r.ID))
	return nil
}
