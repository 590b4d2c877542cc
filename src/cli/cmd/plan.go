package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcompose/src/output"
)

var planSel selection

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show which topics are enabled and why",
	RunE: func(cmd *cobra.Command, args []string) error {
		composer, opts, err := planSel.composer()
		if err != nil {
			return err
		}
		output.PlanTable(cmd.OutOrStdout(), composer.Plan(opts), output.UseColor())
		return nil
	},
}

func init() {
	planSel.register(planCmd)
	rootCmd.AddCommand(planCmd)
}
