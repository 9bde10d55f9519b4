package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search recipes by name or ingredient",
	Long: `Case-insensitive substring search over recipe names and ingredient
names. Each matching recipe is listed once, in collection order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")
		results := manager.Search(term)
		if len(results) == 0 && !jsonOutput {
			fmt.Printf("No recipes matching %q.\n", term)
			return nil
		}
		return printRecipeList(results)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
