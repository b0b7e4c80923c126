package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/besskit/bess-calculator/internal/catalog"
	"github.com/besskit/bess-calculator/internal/config"
)

var (
	exampleFile        string
	exampleCatalogFile string
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example sizing input file",
	Long: `Example writes a representative sizing input as YAML. With
--catalog-output it also exports the built-in equipment catalog, as a
starting point for site-specific overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if err := parser.SaveToFile(parser.CreateExampleInput(), exampleFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example input written to %s\n", exampleFile)

		if exampleCatalogFile != "" {
			data, err := yaml.Marshal(catalog.Default())
			if err != nil {
				return fmt.Errorf("failed to marshal catalog: %w", err)
			}
			if err := os.WriteFile(exampleCatalogFile, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", exampleCatalogFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Built-in catalog written to %s\n", exampleCatalogFile)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().StringVarP(&exampleFile, "output", "o", "bess_input.yaml", "destination file")
	exampleCmd.Flags().StringVar(&exampleCatalogFile, "catalog-output", "", "also export the built-in catalog to this file")
}
