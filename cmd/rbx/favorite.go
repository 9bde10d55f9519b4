package main

import (
	"github.com/spf13/cobra"

	"github.com/recipebox/rbx/internal/debug"
	"github.com/recipebox/rbx/internal/ui"
)

var favoriteCmd = &cobra.Command{
	Use:     "favorite <id-or-position>",
	Aliases: []string{"fav", "toggle"},
	Short:   "Toggle a recipe's favorite flag",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolveRecipe(manager, args[0])
		if err != nil {
			return err
		}

		fav, err := manager.ToggleFavorite(rootCtx, r.ID)
		if err != nil {
			return err
		}

		if fav {
			debug.PrintNormal("%s '%s' is now a favorite\n", ui.RenderFavoriteIcon(), r.Name)
		} else {
			debug.PrintNormal("'%s' is no longer a favorite\n", r.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}
