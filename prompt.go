package openbankctl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const (
	msgNotANumber     = "Invalid input. Please enter a number."
	msgChoiceOutRange = "Invalid choice. Please select a valid option."
	choicePrompt      = "Enter your choice: "

	// Largest decimal exponent accepted from the operator, float64's range.
	maxExponent = 308
)

// Prompter reads operator input line by line and writes prompts and
// messages. Styling is resolved against out, so plain writers such as files
// or buffers receive unstyled text.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	r := lipgloss.NewRenderer(out)
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// ReadLine shows prompt and returns the next input line without its line
// terminator. It fails only with ErrInputClosed.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		fmt.Fprintln(p.out)
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("%w: %s", ErrInputClosed, err.Error())
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadNumber keeps prompting until the operator enters a decimal number.
// Exponents beyond ±308 are refused like any other malformed input.
func (p *Prompter) ReadNumber(prompt string) (decimal.Decimal, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		num, err := decimal.NewFromString(strings.TrimSpace(line))
		if err != nil || num.Exponent() > maxExponent || num.Exponent() < -maxExponent {
			p.Println(msgNotANumber)
			continue
		}
		return num, nil
	}
}

// ReadChoice prints options as a 1-based list and keeps prompting until a
// number within range is entered. It returns the 0-based index.
func (p *Prompter) ReadChoice(options []string) (int, error) {
	for i, opt := range options {
		p.Printf("  %d. %s\n", i+1, opt)
	}
	for {
		line, err := p.ReadLine(choicePrompt)
		if err != nil {
			return -1, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			p.Println(msgNotANumber)
			continue
		}
		if choice < 1 || choice > len(options) {
			p.Println(msgChoiceOutRange)
			continue
		}
		return choice - 1, nil
	}
}

// Pause blocks until the operator presses enter.
func (p *Prompter) Pause(prompt string) error {
	_, err := p.ReadLine(prompt)
	return err
}

func (p *Prompter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Prompter) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// Header prints a section title preceded by a blank line.
func (p *Prompter) Header(title string) {
	fmt.Fprintf(p.out, "\n%s\n", p.header.Render(title))
}

func (p *Prompter) Success(msg string) {
	fmt.Fprintln(p.out, p.success.Render(msg))
}

func (p *Prompter) Failure(msg string) {
	fmt.Fprintln(p.out, p.failure.Render(msg))
}
