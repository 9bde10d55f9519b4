package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/recipebox/rbx/internal/debug"
	"github.com/recipebox/rbx/internal/ui"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id-or-position>",
	Aliases: []string{"rm"},
	Short:   "Delete a recipe",
	Long:    `Delete a recipe. Asks for confirmation unless --force is given.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolveRecipe(manager, args[0])
		if err != nil {
			return err
		}

		if !deleteForce {
			var confirmed bool
			confirm := huh.NewConfirm().
				Title(fmt.Sprintf("Delete recipe '%s'?", r.Name)).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed)
			if err := confirm.Run(); err != nil {
				if err == huh.ErrUserAborted {
					fmt.Fprintln(os.Stderr, "Deletion cancelled.")
					return nil
				}
				return err
			}
			if !confirmed {
				debug.PrintlnNormal("Deletion cancelled.")
				return nil
			}
		}

		deleted, err := manager.Delete(rootCtx, r.ID)
		if err != nil {
			return err
		}
		if !deleted {
			// Resolved above, so the only way here is a concurrent removal.
			debug.PrintNormal("Recipe '%s' was already gone.\n", r.Name)
			return nil
		}

		debug.PrintNormal("%s Deleted recipe '%s'\n", ui.RenderPass(ui.IconPass), r.Name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
