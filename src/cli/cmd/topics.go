package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcompose/src/lint"
	"github.com/sofmeright/lintcompose/src/output"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available topics in composition order",
	RunE: func(cmd *cobra.Command, args []string) error {
		color := output.UseColor()
		sec := output.NewSection(cmd.OutOrStdout(), "Topics", 0, color)
		for _, name := range lint.All() {
			t, err := lint.Get(name)
			if err != nil {
				return err
			}

			var enablement string
			switch reqs := t.AutoDetect(); {
			case len(reqs) > 0:
				pkgs := make([]string, len(reqs))
				for i, r := range reqs {
					pkgs[i] = r.String()
				}
				enablement = "when " + strings.Join(pkgs, " or ")
			case t.DefaultEnabled():
				enablement = "default on"
			default:
				enablement = "opt-in"
			}
			sec.Row("%-14s %s", name, output.Dimmed(enablement, color))
		}
		sec.Separator()
		sec.Row("%s", fmt.Sprintf("%d topics", len(lint.All())))
		sec.Close()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
