// Package wizard collects the configuration record through a fixed sequence
// of questions, either as a huh form (interactive terminals) or as plain
// numbered line prompts (pipes, CI).
package wizard

import (
	"errors"

	"github.com/jotaeme/appgen/internal/config"
)

// Kind is the question type.
type Kind int

const (
	// KindSelect is a single-choice question.
	KindSelect Kind = iota
	// KindConfirm is a yes/no question.
	KindConfirm
	// KindInput is a free-text question.
	KindInput
)

// Option is one selectable answer.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Question defines a single wizard question. Default holds an option value
// for selects, "true"/"false" for confirms, and a literal for inputs.
// Questions whose Condition over the answers so far is false are skipped.
type Question struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Options     []Option
	Default     string
	Required    bool
	Condition   func(*config.Config) bool
}

// DefaultIndex returns the position of the default option, or 0 if the
// declared default is not among the options.
func (q *Question) DefaultIndex() int {
	for i, opt := range q.Options {
		if opt.Value == q.Default {
			return i
		}
	}
	return 0
}

// ErrCancelled is returned when the user aborts the interactive form.
var ErrCancelled = errors.New("cancelled by user")
