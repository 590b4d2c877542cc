package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcompose/src/lint"
	"github.com/sofmeright/lintcompose/src/output"
)

var inspectSel selection

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>...",
	Short: "Show the effective rules for files",
	Long: `Apply the composed fragments to each path the way the linter would and
print the rules that end up active, with the fragment that set each one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectSel.register(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	composer, opts, err := inspectSel.composer()
	if err != nil {
		return err
	}
	fragments := composer.Compose(opts)

	color := output.UseColor()
	for _, path := range args {
		output.EffectiveTable(cmd.OutOrStdout(), lint.Resolve(fragments, path), color)
	}
	return nil
}
