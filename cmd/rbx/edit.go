package main

import (
	"github.com/spf13/cobra"

	"github.com/recipebox/rbx/internal/debug"
	"github.com/recipebox/rbx/internal/recipes"
	"github.com/recipebox/rbx/internal/ui"
)

var (
	editName        string
	editIngredients string
	editQuantities  string
	editSteps       string
	editFavorite    bool
	editCategory    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id-or-position>",
	Short: "Edit fields of a recipe",
	Long: `Edit a recipe. Only the fields given as flags change; everything else
is left as-is. Passing --category "" clears the category.`,
	Example: `  rbx edit 2 --name "Tomato Soup (v2)"
  rbx edit 2 --ingredients "tomato,basil" --quantities "500g,1 bunch"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolveRecipe(manager, args[0])
		if err != nil {
			return err
		}

		var params recipes.UpdateParams
		if cmd.Flags().Changed("name") {
			params.Name = &editName
		}
		if cmd.Flags().Changed("ingredients") || cmd.Flags().Changed("quantities") {
			ingredients, err := parseIngredients(editIngredients, editQuantities)
			if err != nil {
				return err
			}
			params.Ingredients = &ingredients
		}
		if cmd.Flags().Changed("steps") {
			params.Steps = &editSteps
		}
		if cmd.Flags().Changed("favorite") {
			params.Favorite = &editFavorite
		}
		if cmd.Flags().Changed("category") {
			params.Category = &editCategory
		}

		updated, err := manager.Update(rootCtx, r.ID, params)
		if err != nil {
			return err
		}

		debug.PrintNormal("%s Updated recipe '%s'\n", ui.RenderPass(ui.IconPass), updated.Name)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "new recipe name")
	editCmd.Flags().StringVarP(&editIngredients, "ingredients", "i", "", "replacement ingredient names (comma-separated)")
	editCmd.Flags().StringVar(&editQuantities, "quantities", "", "replacement quantities, one per ingredient")
	editCmd.Flags().StringVarP(&editSteps, "steps", "s", "", "new cooking steps")
	editCmd.Flags().BoolVarP(&editFavorite, "favorite", "f", false, "set favorite flag")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "new category (empty clears)")
	rootCmd.AddCommand(editCmd)
}
