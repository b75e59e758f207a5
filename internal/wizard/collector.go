package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jotaeme/appgen/internal/config"
)

// Collector runs the question sequence as plain numbered line prompts.
// Used when stdin is not a terminal or under CI. Invalid input re-prompts
// without limit and without touching the record.
type Collector struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewCollector creates a collector reading answers from in and writing
// prompts to out.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{in: bufio.NewScanner(in), out: out}
}

// Run asks every question whose condition holds and returns the completed
// configuration record. The record is only returned once all questions are
// answered.
func (c *Collector) Run(questions []Question) (*config.Config, error) {
	cfg := config.New()
	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(cfg) {
			continue
		}

		var value string
		var err error
		switch q.Kind {
		case KindSelect:
			value, err = c.askSelect(q)
		case KindConfirm:
			value, err = c.askConfirm(q)
		case KindInput:
			value, err = c.askInput(q)
		}
		if err != nil {
			return nil, err
		}
		Apply(cfg, q.ID, value)
	}
	return cfg, nil
}

// AskConfirm asks a standalone yes/no question outside the sequence.
func (c *Collector) AskConfirm(title string, def bool) (bool, error) {
	q := &Question{Title: title, Kind: KindConfirm, Default: strconv.FormatBool(def)}
	v, err := c.askConfirm(q)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

func (c *Collector) askSelect(q *Question) (string, error) {
	fmt.Fprintf(c.out, "\n%s\n", q.Title)
	if q.Description != "" {
		fmt.Fprintf(c.out, "%s\n", q.Description)
	}
	defIdx := q.DefaultIndex()
	for i, opt := range q.Options {
		marker := " "
		if i == defIdx {
			marker = ">"
		}
		label := opt.Label
		if opt.Desc != "" {
			label += " (" + opt.Desc + ")"
		}
		fmt.Fprintf(c.out, " %s %d. %s\n", marker, i+1, label)
	}

	for {
		fmt.Fprintf(c.out, "Select option (1-%d, default %d): ", len(q.Options), defIdx+1)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return q.Options[defIdx].Value, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Fprintf(c.out, "Please enter a number between 1 and %d\n", len(q.Options))
			continue
		}
		return q.Options[n-1].Value, nil
	}
}

func (c *Collector) askConfirm(q *Question) (string, error) {
	def := q.Default == "true"
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(c.out, "%s (%s): ", q.Title, hint)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		switch strings.ToLower(line) {
		case "":
			return q.Default, nil
		case "y", "yes":
			return "true", nil
		case "n", "no":
			return "false", nil
		}
		fmt.Fprintln(c.out, "Please answer y or n")
	}
}

func (c *Collector) askInput(q *Question) (string, error) {
	for {
		if q.Default != "" {
			fmt.Fprintf(c.out, "%s (default: %s): ", q.Title, q.Default)
		} else {
			fmt.Fprintf(c.out, "%s: ", q.Title)
		}
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			line = q.Default
		}
		if line == "" && q.Required {
			fmt.Fprintln(c.out, "A value is required")
			continue
		}
		return line, nil
	}
}

func (c *Collector) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}
