package cli

import (
	"github.com/spf13/cobra"

	"github.com/jotaeme/appgen/internal/config"
	"github.com/jotaeme/appgen/internal/exitcodes"
	"github.com/jotaeme/appgen/internal/resolver"
)

func (a *App) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps [dir]",
		Short: "Show the resolved package set for a generated project",
		Long:  "Re-resolves the dependency manifest from the appgen.yml in the given directory (default: current directory).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return a.runDeps(dir)
		},
	}
}

func (a *App) runDeps(dir string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error()}
	}

	manifest, err := resolver.Resolve(cfg)
	if err != nil {
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error()}
	}

	if len(manifest.Packages) == 0 && len(manifest.DevPackages) == 0 {
		a.output.Info("No external packages (%s project)", cfg.Platform)
		return nil
	}

	var rows [][]string
	for _, pkg := range resolver.Sorted(manifest.Packages) {
		rows = append(rows, []string{pkg.Name, pkg.Version, "runtime"})
	}
	for _, pkg := range resolver.Sorted(manifest.DevPackages) {
		rows = append(rows, []string{pkg.Name, pkg.Version, "dev"})
	}

	a.output.Table([]string{"PACKAGE", "VERSION", "KIND"}, rows)
	return nil
}
