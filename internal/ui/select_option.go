package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Option is one selectable entry of a selection prompt
type Option struct {
	Label string // line shown to the user
	Key   string // optional single-character shortcut
}

// SelectOption asks the user to pick one option by number or shortcut key.
// Empty input selects defaultIndex; an out-of-range default falls back to
// the first option. Invalid input asks again.
func (p *Prompter) SelectOption(message string, options []Option, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options to select from")
	}

	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	bold := color.New(color.Bold)
	if _, err := bold.Fprintln(p.out, message); err != nil {
		return -1, err
	}

	for i, option := range options {
		var err error
		if option.Key != "" {
			_, err = fmt.Fprintf(p.out, "  %2d) [%s] %s\n", i+1, option.Key, option.Label)
		} else {
			_, err = fmt.Fprintf(p.out, "  %2d) %s\n", i+1, option.Label)
		}
		if err != nil {
			return -1, err
		}
	}

	prompt := fmt.Sprintf("Enter a number or key [%d]: ", defaultIndex+1)

	for {
		response, err := p.readLine(prompt)
		if err != nil {
			return -1, err
		}

		response = strings.TrimSpace(response)
		if response == "" {
			return defaultIndex, nil
		}

		if number, err := strconv.Atoi(response); err == nil {
			if number >= 1 && number <= len(options) {
				return number - 1, nil
			}
		} else {
			for i, option := range options {
				if option.Key != "" && strings.EqualFold(response, option.Key) {
					return i, nil
				}
			}
		}

		_, err = fmt.Fprintf(p.out, "Please enter a number between 1 and %d\n", len(options))
		if err != nil {
			return -1, err
		}
	}
}
