package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcompose/src/typegen"
)

var (
	typegenOut  string
	typegenJSON bool
)

var typegenCmd = &cobra.Command{
	Use:   "typegen",
	Short: "Generate rule and config-name declarations for editors",
	Long: `Build every topic with default options, regardless of enablement, and
write the union of rule names and fragment names as a TypeScript
declaration file (or JSON with --json).`,
	RunE: runTypegen,
}

func init() {
	typegenCmd.Flags().StringVarP(&typegenOut, "out", "o", "", "write to this file instead of stdout")
	typegenCmd.Flags().BoolVar(&typegenJSON, "json", false, "emit a JSON manifest instead of TypeScript")

	rootCmd.AddCommand(typegenCmd)
}

func runTypegen(cmd *cobra.Command, args []string) error {
	m, err := typegen.Collect()
	if err != nil {
		return err
	}

	err = writeTo(cmd, typegenOut, func(w io.Writer) error {
		if typegenJSON {
			return m.WriteJSON(w)
		}
		return m.WriteDTS(w)
	})
	if err != nil {
		return err
	}
	if typegenOut != "" {
		fmt.Fprintf(os.Stderr, "  wrote %d rules, %d configs → %s\n", len(m.Rules), len(m.Configs), typegenOut)
	}
	return nil
}
