package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jotaeme/appgen/internal/config"
)

// RunForm executes the question sequence as a series of huh forms. Each
// question runs as its own form so conditions can be evaluated against the
// answers already stored in the record.
func RunForm(questions []Question) (*config.Config, error) {
	cfg := config.New()
	theme := formTheme()

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(cfg) {
			continue
		}

		value, err := runField(q, theme)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard: %w", err)
		}
		Apply(cfg, q.ID, value)
	}

	return cfg, nil
}

func runField(q *Question, theme *huh.Theme) (string, error) {
	switch q.Kind {
	case KindConfirm:
		confirmed := q.Default == "true"
		field := huh.NewConfirm().
			Title(q.Title).
			Description(q.Description).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed)
		if err := runForm(field, theme); err != nil {
			return "", err
		}
		if confirmed {
			return "true", nil
		}
		return "false", nil

	case KindInput:
		value := q.Default
		field := huh.NewInput().
			Title(q.Title).
			Description(q.Description).
			Placeholder(q.Default).
			Value(&value).
			Validate(func(v string) error {
				if q.Required && v == "" {
					return errors.New("a value is required")
				}
				return nil
			})
		if err := runForm(field, theme); err != nil {
			return "", err
		}
		return value, nil

	default:
		opts := make([]huh.Option[string], len(q.Options))
		for i, opt := range q.Options {
			label := opt.Label
			if opt.Desc != "" {
				label += " — " + opt.Desc
			}
			opts[i] = huh.NewOption(label, opt.Value)
		}
		selected := q.Default
		field := huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(opts...).
			Value(&selected)
		if err := runForm(field, theme); err != nil {
			return "", err
		}
		return selected, nil
	}
}

func runForm(field huh.Field, theme *huh.Theme) error {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(theme).
		Run()
}

// formTheme returns the huh theme used for all wizard forms.
func formTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
