package cli

import (
	"github.com/spf13/cobra"

	"github.com/jotaeme/appgen/internal/wizard"
)

func (a *App) newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List every question and its option set",
		Run: func(cmd *cobra.Command, args []string) {
			a.runOptions()
		},
	}
}

func (a *App) runOptions() {
	for _, q := range wizard.Questions() {
		switch q.Kind {
		case wizard.KindConfirm:
			def := "no"
			if q.Default == "true" {
				def = "yes"
			}
			a.output.Info("%s (yes/no, default: %s)", q.Title, def)
		case wizard.KindInput:
			a.output.Info("%s (text, default: %s)", q.Title, q.Default)
		default:
			a.output.Info("%s", q.Title)
			for i, opt := range q.Options {
				marker := " "
				if i == q.DefaultIndex() {
					marker = ">"
				}
				if opt.Desc != "" {
					a.output.Info("  %s %s — %s", marker, opt.Label, opt.Desc)
				} else {
					a.output.Info("  %s %s", marker, opt.Label)
				}
			}
		}
		a.output.Info("")
	}
}
