// Command rbx is a personal recipe manager: create, list, search, favorite,
// and delete recipes, and derive combined shopping lists from them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/recipebox/rbx/internal/configfile"
	"github.com/recipebox/rbx/internal/debug"
	"github.com/recipebox/rbx/internal/recipes"
	"github.com/recipebox/rbx/internal/storage"
	"github.com/recipebox/rbx/internal/storage/jsonfile"
	"github.com/recipebox/rbx/internal/storage/memory"
	"github.com/recipebox/rbx/internal/ui"
)

// Version is set at build time via -ldflags.
var (
	Version = "dev"
	Build   = "unknown"
)

var (
	filePath    string
	noColor     bool
	verboseFlag bool
	quietFlag   bool
	ephemeral   bool
	jsonOutput  bool

	store   storage.Storage
	manager *recipes.Manager

	// Signal-aware context for graceful cancellation
	rootCtx    context.Context
	rootCancel context.CancelFunc
)

func init() {
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "recipe storage file (default: from config, else ~/.recipebox/recipes.json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep recipes in memory only (nothing written to disk)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.Flags().Bool("version", false, "print version")
}

var rootCmd = &cobra.Command{
	Use:          "rbx",
	Short:        "rbx - Personal recipe manager",
	Long:         `RecipeBox keeps your recipes in a single JSON file: add, search, favorite, and delete recipes, and build combined shopping lists from any subset of them.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("rbx version %s (%s)\n", Version, Build)
			return nil
		}
		// No subcommand - show help
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.SetVerbose(verboseFlag)
		debug.SetQuiet(quietFlag)

		cfg := loadConfig()
		if noColor || cfg.NoColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColor()
		}

		if isNoStoreCommand(cmd) {
			return nil
		}
		return openStore(cfg)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			_ = store.Close()
		}
	},
}

// isNoStoreCommand reports whether cmd runs without touching storage. The
// root command itself qualifies: bare `rbx` prints help and `rbx --version`
// prints the banner, neither should create or read the recipe file.
func isNoStoreCommand(cmd *cobra.Command) bool {
	if !cmd.HasParent() {
		return true
	}
	switch cmd.Name() {
	case "help", "completion", "version", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return false
}

func loadConfig() *configfile.Config {
	cfg, err := configfile.Load(configfile.Dir())
	if err != nil {
		debug.Warnf("ignoring unreadable config: %v\n", err)
		cfg = nil
	}
	if cfg == nil {
		cfg = configfile.DefaultConfig()
	}
	return cfg
}

// openStore selects the backend and constructs the manager. The manager load
// is the one place a read failure is fatal: a file we cannot read (as opposed
// to a missing or corrupted one) must not be silently treated as empty.
func openStore(cfg *configfile.Config) error {
	if ephemeral {
		store = memory.New()
	} else {
		path := filePath
		if path == "" {
			path = cfg.RecipesPath(configfile.Dir())
		}
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("creating storage directory: %w", err)
		}
		debug.Logf("using recipe file %s\n", path)
		store = jsonfile.New(path)
	}

	var err error
	manager, err = recipes.NewManager(rootCtx, store)
	if err != nil {
		return err
	}
	return nil
}

// storePath returns the primary file path, or "" for the memory backend.
func storePath() string {
	if s, ok := store.(*jsonfile.Store); ok {
		return s.Path()
	}
	return ""
}

func main() {
	rootCtx, rootCancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer rootCancel()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
