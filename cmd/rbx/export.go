package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the recipe collection",
	Long:  `Write the full collection to stdout (or a file) as JSON or YAML.`,
	Example: `  rbx export > recipes-backup.json
  rbx export --format yaml -o recipes.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		recipes := manager.All()

		var data []byte
		var err error
		switch exportFormat {
		case "json":
			data, err = json.MarshalIndent(recipes, "", "  ")
			if err == nil {
				data = append(data, '\n')
			}
		case "yaml":
			data, err = yaml.Marshal(recipes)
		default:
			return fmt.Errorf("unsupported format %q (want json or yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("marshaling recipes: %w", err)
		}

		if exportOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0600); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}
		fmt.Fprintf(os.Stderr, "Exported %d recipes to %s\n", len(recipes), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
