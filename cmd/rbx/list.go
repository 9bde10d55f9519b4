package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/recipebox/rbx/internal/debug"
	"github.com/recipebox/rbx/internal/types"
	"github.com/recipebox/rbx/internal/ui"
)

var (
	listFavorites bool
	listWatch     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	Long: `List all recipes in insertion order, numbered 1-based.

The printed numbers can be used in place of recipe ids in other commands
(show, favorite, delete, shopping).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listWatch {
			return watchRecipes(rootCtx)
		}

		recipes := manager.All()
		if listFavorites {
			recipes = manager.Favorites()
		}
		return printRecipeList(recipes)
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRecipeList(manager.Favorites())
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listFavorites, "favorites", "f", false, "only favorite recipes")
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "watch the storage file and re-display on change")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(favoritesCmd)
}

// printRecipeList renders recipes with their positions in the full
// collection, so the shown numbers stay valid as command arguments even for
// filtered views.
func printRecipeList(recipes []*types.Recipe) error {
	if jsonOutput {
		data, err := json.MarshalIndent(recipes, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}

	positions := collectionPositions()
	for _, r := range recipes {
		fmt.Println(ui.RecipeLine(positions[r.ID], r))
	}
	return nil
}

// collectionPositions maps recipe id to its 1-based position in insertion
// order.
func collectionPositions() map[string]int {
	positions := make(map[string]int)
	for i, r := range manager.All() {
		positions[r.ID] = i + 1
	}
	return positions
}

// watchHint tells the user the watch is live. Suppressed in quiet mode; the
// recipe lines themselves are the primary output and always print.
func watchHint() {
	if debug.IsQuiet() {
		return
	}
	fmt.Fprintf(os.Stderr, "\nWatching for changes... (Press Ctrl+C to exit)\n")
}

// watchRecipes re-displays the list whenever the storage file changes on
// disk. Useful when another window is editing recipes.
func watchRecipes(ctx context.Context) error {
	path := storePath()
	if path == "" {
		return fmt.Errorf("--watch requires file-backed storage (not --ephemeral)")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }() // Best effort cleanup

	// Watch the directory: the atomic rename replaces the file inode, so
	// watching the file itself would silently drop after the first save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	if err := printRecipeList(manager.All()); err != nil {
		return err
	}
	watchHint()

	var debounceTimer *time.Timer
	debounceDelay := 500 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintf(os.Stderr, "\nStopped watching.\n")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if (event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)) &&
				filepath.Base(event.Name) == filepath.Base(path) {
				// Debounce rapid changes
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					recipes, err := store.Load(ctx)
					if err != nil {
						fmt.Fprintf(os.Stderr, "Error refreshing recipes: %v\n", err)
						return
					}
					for i, r := range recipes {
						fmt.Println(ui.RecipeLine(i+1, r))
					}
					watchHint()
				})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}
