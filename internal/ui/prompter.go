package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// ErrInterrupted is returned when the user interrupts input with Ctrl+C
var ErrInterrupted = errors.New("input interrupted")

// Prompter renders prompts and reads answers from a single input stream.
// All prompts share one scanner so that answers queued on the stream are
// consumed one line at a time.
type Prompter struct {
	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
}

// NewPrompter creates a new Prompter
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:      in,
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// Input shows a free-text question and reads a single line.
// An empty line is a valid, empty answer.
func (p *Prompter) Input(message string) (string, error) {
	if _, err := fmt.Fprint(p.out, message); err != nil {
		return "", err
	}
	return p.readLine("> ")
}

// ShowError prints a validation error so the question can be asked again
func (p *Prompter) ShowError(err error) {
	red := color.New(color.FgRed)
	red.Fprintln(p.out, err.Error())
}

// readLine reads one line of input. On a real terminal readline provides
// line editing (Chinese, arrows, history); everywhere else the shared
// scanner reads from the stream.
func (p *Prompter) readLine(prompt string) (string, error) {
	if p.in == os.Stdin && p.out == os.Stdout {
		return p.readTerminalLine(prompt)
	}
	return p.readScannerLine(prompt)
}

// readTerminalLine reads one line through readline
func (p *Prompter) readTerminalLine(prompt string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		// Fallback to regular input if readline fails
		return p.readScannerLine(prompt)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err == readline.ErrInterrupt {
		return "", ErrInterrupted
	}
	return line, err
}

// readScannerLine reads one line from the shared scanner
func (p *Prompter) readScannerLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}
