// Package cli wires the appgen commands together.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jotaeme/appgen/internal/ui"
)

// App is the dependency container for all CLI commands.
type App struct {
	rootCmd *cobra.Command
	version string
	commit  string
	date    string
	output  *ui.Output

	outputDir string
	force     bool
	debug     bool
	noColor   bool
}

// NewApp creates the root command and registers all subcommands.
// Running the bare root command starts the interactive generator.
func NewApp(version, commit, date string) *App {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		output:  ui.NewOutput(),
	}

	root := &cobra.Command{
		Use:   "appgen",
		Short: "Interactive app template generator",
		Long:  "Generates Flutter and macOS app templates from a short interactive questionnaire.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if os.Getenv("APPGEN_DEBUG") != "" {
				app.debug = true
			}
			if app.noColor || os.Getenv("APPGEN_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
				app.output.SetNoColor(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runNew()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&app.outputDir, "output", "o", "", "output directory (default: ./<project name>)")
	root.PersistentFlags().BoolVar(&app.force, "force", false, "write into a non-empty target directory")
	root.PersistentFlags().BoolVar(&app.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&app.debug, "debug", false, "enable debug output")

	root.AddCommand(
		app.newNewCmd(),
		app.newDepsCmd(),
		app.newOptionsCmd(),
		app.newVersionCmd(),
	)

	app.rootCmd = root
	return app
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			a.output.Info("appgen %s (commit: %s, built: %s)", a.version, a.commit, a.date)
		},
	}
}

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// debugf prints a debug message if debug mode is enabled.
func (a *App) debugf(format string, args ...interface{}) {
	if a.debug {
		a.output.Debug(format, args...)
	}
}
