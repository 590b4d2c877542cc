package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcompose/src/output"
)

var (
	composeSel    selection
	composeFormat string
	composeOut    string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Print the ordered flat-config fragment list",
	Long: `Compose the fragment sequence for the current project.

Topics run in fixed priority order. Framework topics switch on when the
project depends on their package unless the config says otherwise. Custom
fragments follow, then one fragment holding the global overrides.`,
	RunE: runCompose,
}

func init() {
	composeSel.register(composeCmd)
	composeCmd.Flags().StringVarP(&composeFormat, "format", "f", "json", "output format: json, yaml, summary")
	composeCmd.Flags().StringVarP(&composeOut, "out", "o", "", "write to this file instead of stdout")

	rootCmd.AddCommand(composeCmd)
}

func runCompose(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(composeFormat)
	if err != nil {
		return err
	}

	composer, opts, err := composeSel.composer()
	if err != nil {
		return err
	}
	start := time.Now()
	fragments := composer.Compose(opts)
	elapsed := time.Since(start)

	err = writeTo(cmd, composeOut, func(w io.Writer) error {
		if format == output.FormatSummary {
			output.FragmentTable(w, fragments, elapsed, composeOut == "" && output.UseColor())
			return nil
		}
		return output.WriteFragments(w, fragments, format)
	})
	if err != nil {
		return fmt.Errorf("writing fragments: %w", err)
	}
	if composeOut != "" {
		fmt.Fprintf(os.Stderr, "  wrote %d fragments → %s\n", len(fragments), composeOut)
	}
	return nil
}
