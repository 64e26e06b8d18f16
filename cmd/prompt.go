package cmd

import (
	"errors"

	"vid2mp3/application/convert"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyPrompter implements convert.Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", translatePromptErr(err)
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, translatePromptErr(err)
	}
	return result, nil
}

func (p *SurveyPrompter) Select(message string, options []string) (int, error) {
	index := 0
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, translatePromptErr(err)
	}
	return index, nil
}

// translatePromptErr maps survey's Ctrl-C sentinel onto the session-level
// interruption error so callers treat it as a graceful abort
func translatePromptErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return convert.ErrInterrupted
	}
	return err
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter convert.Prompter = &SurveyPrompter{}
