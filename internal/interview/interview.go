package interview

import (
	"context"
	"fmt"

	"github.com/huimingz/commitbuddy-go/internal/cz"
	"github.com/huimingz/commitbuddy-go/internal/ui"
)

// Interviewer walks a style's questions in order and collects validated
// answers
type Interviewer struct {
	prompter *ui.Prompter
}

// New creates a new Interviewer
func New(prompter *ui.Prompter) *Interviewer {
	return &Interviewer{prompter: prompter}
}

// Run asks every question and returns the collected answers. A filter
// failure reports the error and repeats the question, so the interview
// moves on only once the answer is valid.
func (i *Interviewer) Run(ctx context.Context, questions []cz.Question) (cz.Answers, error) {
	answers := make(cz.Answers, len(questions))

	for _, question := range questions {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		switch question.Type {
		case cz.QuestionInput:
			value, err := i.askInput(question)
			if err != nil {
				return nil, err
			}
			answers[question.Name] = value
		case cz.QuestionList:
			value, err := i.askList(question)
			if err != nil {
				return nil, err
			}
			answers[question.Name] = value
		case cz.QuestionConfirm:
			value, err := i.prompter.ConfirmWithDefault(question.Message, question.DefaultYes)
			if err != nil {
				return nil, err
			}
			answers[question.Name] = value
		default:
			return nil, fmt.Errorf("unsupported question type: %s", question.Type)
		}
	}

	return answers, nil
}

// askInput repeats a free-text question until its filter accepts the answer
func (i *Interviewer) askInput(question cz.Question) (string, error) {
	for {
		raw, err := i.prompter.Input(question.Message)
		if err != nil {
			return "", err
		}

		if question.Filter == nil {
			return raw, nil
		}

		value, err := question.Filter(raw)
		if err != nil {
			i.prompter.ShowError(err)
			continue
		}
		return value, nil
	}
}

// askList repeats a choice question until its filter accepts the selection
func (i *Interviewer) askList(question cz.Question) (string, error) {
	options := make([]ui.Option, len(question.Choices))
	for idx, choice := range question.Choices {
		options[idx] = ui.Option{Label: choice.Name, Key: choice.Key}
	}

	for {
		selected, err := i.prompter.SelectOption(question.Message, options, 0)
		if err != nil {
			return "", err
		}

		value := question.Choices[selected].Value
		if question.Filter == nil {
			return value, nil
		}

		value, err = question.Filter(value)
		if err != nil {
			i.prompter.ShowError(err)
			continue
		}
		return value, nil
	}
}
