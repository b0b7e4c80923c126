package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/besskit/bess-calculator/internal/config"
	"github.com/besskit/bess-calculator/internal/output"
)

var (
	inputFile  string
	formatName string
	outputFile string
	saveReport bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run a sizing calculation from an input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		input, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		report, err := buildReport(engine, *input)
		if err != nil {
			return err
		}

		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			return fmt.Errorf("unknown format %q (available: %v)", formatName, output.AvailableFormatterNames())
		}

		if saveReport {
			filename, err := output.WriteFormatted(formatter, report, reportExtension(formatter))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
			return nil
		}

		data, err := formatter.Format(report)
		if err != nil {
			return err
		}
		if outputFile != "" {
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputFile)
			return nil
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// reportExtension maps a formatter to its report file extension.
func reportExtension(f output.Formatter) string {
	if f.Name() == "console" {
		return "txt"
	}
	return f.Name()
}

func init() {
	rootCmd.AddCommand(calculateCmd)
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "sizing input YAML file")
	calculateCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format (console, json, csv)")
	calculateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write report to file instead of stdout")
	calculateCmd.Flags().BoolVarP(&saveReport, "save", "s", false, "write report to a timestamped file in the working directory")
	_ = calculateCmd.MarkFlagRequired("input")
}
