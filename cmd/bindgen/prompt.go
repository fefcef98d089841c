package main

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// errAborted signals the user aborted input (e.g., Ctrl+C).
var errAborted = errors.New("match: aborted")

// InputConfig configures a single-line prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// TextAreaConfig configures a multi-line prompt.
type TextAreaConfig struct {
	Message string
	Default string
	Help    string
}

// PromptDriver abstracts the terminal so the interactive flow can be tested
// without one.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
}

type surveyDriver struct{}

func newSurveyDriver() PromptDriver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

// promptElement fills the tag and attributes from the driver. Values already
// supplied through flags become prompt defaults.
func promptElement(ctx context.Context, driver PromptDriver, opts *matchOptions) error {
	if driver == nil {
		return errors.New("match: interactive mode needs a prompt driver")
	}
	tag, err := driver.Input(ctx, InputConfig{
		Message: "Element tag name",
		Default: opts.tag,
		Help:    "For example input, select, or a component name such as Counter.",
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("tag name is required")
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	raw, err := driver.TextArea(ctx, TextAreaConfig{
		Message: "Attributes (one name=value per line)",
		Default: strings.Join(opts.attrs, "\n"),
		Help:    "For example bind-value=@x",
	})
	if err != nil {
		return err
	}

	opts.tag = tag
	opts.attrs = opts.attrs[:0]
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		opts.attrs = append(opts.attrs, line)
	}
	return nil
}
