package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipebox/rbx/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-position>",
	Short: "Show a recipe in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolveRecipe(manager, args[0])
		if err != nil {
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

		fmt.Print(ui.RecipeDetail(r))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
