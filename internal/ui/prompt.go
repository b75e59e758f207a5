package ui

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// IsCI returns true if running in a CI environment.
func IsCI() bool {
	return isTruthy(os.Getenv("CI")) ||
		isTruthy(os.Getenv("APPGEN_CI")) ||
		isTruthy(os.Getenv("GITHUB_ACTIONS")) ||
		isTruthy(os.Getenv("GITLAB_CI"))
}

func isTruthy(v string) bool {
	return v != "" && v != "false" && v != "0"
}

// IsInteractive reports whether stdin is attached to a terminal and the
// process is not running under CI. The wizard uses full-screen forms only
// when this is true; otherwise it falls back to plain line prompts.
func IsInteractive() bool {
	if IsCI() {
		return false
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Confirm prompts the user for a yes/no confirmation via a huh form.
func Confirm(title string, def bool) (bool, error) {
	confirmed := def
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	return confirmed, err
}
