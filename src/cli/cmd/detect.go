package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sofmeright/lintcompose/src/lint"
	"github.com/sofmeright/lintcompose/src/output"
)

var detectSel selection

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the packages auto-detection looks for",
	RunE:  runDetect,
}

func init() {
	detectSel.register(detectCmd)
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	env, project, err := detectSel.environment()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	color := output.UseColor()

	boundary := project.Boundary
	if boundary == "" {
		boundary = "(none)"
	}
	output.ContextBlock(w, []output.KV{
		{Key: "Project", Value: project.Root},
		{Key: "Git root", Value: boundary},
		{Key: "Declared", Value: strconv.Itoa(len(project.Declared))},
	})

	sec := output.NewSection(w, "Auto-detection", 0, color)
	for _, name := range lint.All() {
		t, err := lint.Get(name)
		if err != nil {
			return err
		}
		for _, req := range t.AutoDetect() {
			status, detail := "skipped", "absent"
			if env.Has(req.Package) {
				detail = "present"
				if v, ok := env.Version(req.Package); ok {
					detail = v.String()
				}
				if req.Satisfied(env) {
					status = "success"
				} else {
					status = "warning"
					detail += ", outside " + req.Constraint
				}
			}
			sec.Row("%-14s%-20s%s  %s", name, req.String(), output.StatusIcon(status, color), output.Dimmed(detail, color))
		}
	}
	sec.Close()
	return nil
}
