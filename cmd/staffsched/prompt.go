package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/staffsched-go/pkg/staffsched/calendar"
)

// prompter asks the operator line-oriented questions.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// line prints prompt and reads one trimmed answer.
// End of input means the operator gave up.
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(p.out)
		return "", errAborted
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) confirm() error {
	_, err := p.line("Press ENTER to continue or CTRL+C to cancel...")
	return err
}

// month asks until the answer is a number between 1 and 12.
func (p *prompter) month() (int, error) {
	for {
		answer, err := p.line("Enter month (as a number): ")
		if err != nil {
			return 0, err
		}
		m, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Month must be a valid number.")
			continue
		}
		if _, err := calendar.NewPeriod(1, m); errors.Is(err, calendar.ErrInvalidMonth) {
			fmt.Fprintln(p.out, "Month must be between 1 and 12.")
			continue
		}
		return m, nil
	}
}

// year asks until the answer is a number between 1 and calendar.MaxYear.
func (p *prompter) year() (int, error) {
	for {
		answer, err := p.line("Enter year: ")
		if err != nil {
			return 0, err
		}
		y, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Year must be a valid number.")
			continue
		}
		if _, err := calendar.NewPeriod(y, 1); errors.Is(err, calendar.ErrInvalidYear) {
			if y < 1 {
				fmt.Fprintln(p.out, "Year must be 1 or greater.")
			} else {
				fmt.Fprintf(p.out, "Year must be %d or earlier.\n", calendar.MaxYear)
			}
			continue
		}
		return y, nil
	}
}
