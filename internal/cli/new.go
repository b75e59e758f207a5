package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jotaeme/appgen/internal/config"
	"github.com/jotaeme/appgen/internal/emitter"
	"github.com/jotaeme/appgen/internal/exitcodes"
	"github.com/jotaeme/appgen/internal/resolver"
	"github.com/jotaeme/appgen/internal/ui"
	"github.com/jotaeme/appgen/internal/wizard"
)

func (a *App) newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Generate a new app template interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNew()
		},
	}
}

func (a *App) runNew() error {
	questions := wizard.Questions()
	interactive := ui.IsInteractive()

	// The collector reads from stdin; keep a single one for the whole run
	// so the confirmation prompt shares its buffer.
	var collector *wizard.Collector
	var cfg *config.Config
	var err error
	if interactive {
		cfg, err = wizard.RunForm(questions)
	} else {
		collector = wizard.NewCollector(os.Stdin, os.Stdout)
		cfg, err = collector.Run(questions)
	}
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			return &ExitError{Code: exitcodes.Cancelled, Message: "cancelled"}
		}
		return fmt.Errorf("collecting answers: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.printSummary(cfg)

	proceed, err := a.confirm(collector, "Proceed with template generation?", true)
	if err != nil {
		return err
	}
	if !proceed {
		a.output.Info("Template generation cancelled.")
		return nil
	}

	target := a.outputDir
	if target == "" {
		target = strings.ToLower(strings.ReplaceAll(cfg.Project, " ", "_"))
	}

	manifest, err := resolver.Resolve(cfg)
	if err != nil {
		return fmt.Errorf("resolving dependencies: %w", err)
	}
	a.debugf("resolved %d packages, %d dev packages", len(manifest.Packages), len(manifest.DevPackages))

	em := emitter.New(cfg, manifest, target)
	em.SetForce(a.force)

	result, err := a.generate(em)
	if err != nil {
		var existsErr *emitter.TargetExistsError
		if !errors.As(err, &existsErr) {
			return &ExitError{Code: exitcodes.FileSystemError, Message: err.Error()}
		}

		overwrite, confirmErr := a.confirm(collector, fmt.Sprintf("Directory %s is not empty. Overwrite?", existsErr.Path), false)
		if confirmErr != nil {
			return confirmErr
		}
		if !overwrite {
			return &ExitError{Code: exitcodes.FileSystemError, Message: existsErr.Error()}
		}

		em.SetForce(true)
		if result, err = a.generate(em); err != nil {
			return &ExitError{Code: exitcodes.FileSystemError, Message: err.Error()}
		}
	}

	cfg.Generated = &config.Generated{
		Packages:    manifest.Packages,
		DevPackages: manifest.DevPackages,
		Files:       result.Files,
		FileHashes:  result.FileHashes,
	}
	if err := config.Save(target, cfg); err != nil {
		return &ExitError{Code: exitcodes.FileSystemError, Message: err.Error()}
	}

	a.output.Success("Generated %s template with %d files at %s", cfg.Platform, len(result.Files)+1, target)
	a.printNextSteps(cfg, target)
	return nil
}

func (a *App) generate(em *emitter.Emitter) (*emitter.Result, error) {
	var result *emitter.Result
	err := ui.WithSpinner("Generating template...", func() error {
		r, genErr := em.Generate()
		result = r
		return genErr
	})
	return result, err
}

// confirm routes a yes/no question through the active input mode.
func (a *App) confirm(collector *wizard.Collector, title string, def bool) (bool, error) {
	if collector == nil {
		return ui.Confirm(title, def)
	}
	return collector.AskConfirm(title, def)
}

func (a *App) printSummary(cfg *config.Config) {
	a.output.Info("\nConfiguration summary")
	a.output.Info("---------------------")

	pairs := [][2]string{
		{"Project", cfg.Project},
		{"Platform", cfg.Platform},
		{"App type", cfg.Category},
		{"Authentication", authSummary(cfg)},
		{"Database", cfg.Database},
	}
	if cfg.Platform == config.PlatformFlutter {
		pairs = append(pairs, [2]string{"State management", cfg.StateManagement})
	} else {
		pairs = append(pairs, [2]string{"UI framework", cfg.UIFramework})
	}
	if cfg.Game != nil {
		pairs = append(pairs, [2]string{"Game engine", cfg.Game.Engine})
		if cfg.Game.Multiplayer {
			pairs = append(pairs, [2]string{"Multiplayer", cfg.Game.MultiplayerType})
		}
	}
	a.output.KeyValue(pairs)
	a.output.Info("")
}

func authSummary(cfg *config.Config) string {
	if !cfg.Auth.Enabled {
		return "disabled"
	}
	return cfg.Auth.Provider
}

func (a *App) printNextSteps(cfg *config.Config, target string) {
	a.output.Info("\nNext steps:")
	switch cfg.Platform {
	case config.PlatformFlutter:
		a.output.Info("  cd %s", target)
		a.output.Info("  flutter pub get")
		a.output.Info("  flutter run")
	case config.PlatformMacOS:
		a.output.Info("  cd %s", target)
		a.output.Info("  # Create an Xcode project from the sources (see README.md)")
	}
}
