package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/besskit/bess-calculator/internal/output"
	"github.com/besskit/bess-calculator/internal/prompt"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Collect the sizing input interactively and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), prompt.Banner())
		input, err := prompt.Collect()
		if err != nil {
			return err
		}

		report, err := buildReport(engine, input)
		if err != nil {
			return err
		}

		data, err := output.ConsoleFormatter{}.Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
