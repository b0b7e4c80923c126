// Package cli wires the cobra command tree for the bess-calculator binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/besskit/bess-calculator/internal/calculation"
	"github.com/besskit/bess-calculator/internal/catalog"
	"github.com/besskit/bess-calculator/internal/domain"
)

var catalogPath string

var rootCmd = &cobra.Command{
	Use:   "bess-calculator",
	Short: "Battery energy storage sizing and selection",
	Long: `bess-calculator sizes a battery energy storage system from a load
profile: it derives the required capacity through the derating cascade,
selects equipment from the catalog, and reports costs, financials and
design alternatives.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in catalog)")
}

// loadEngine builds an engine over the selected catalog.
func loadEngine() (*calculation.Engine, error) {
	cat := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.LoadFromFile(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
	}
	return calculation.NewEngine(cat), nil
}

// buildReport runs the full pipeline for one input.
func buildReport(engine *calculation.Engine, input domain.SizingInput) (*domain.Report, error) {
	result, err := engine.Calculate(input)
	if err != nil {
		return nil, err
	}
	recommendations, err := engine.GenerateRecommendations(input)
	if err != nil {
		return nil, err
	}
	return &domain.Report{Result: result, Recommendations: recommendations}, nil
}
