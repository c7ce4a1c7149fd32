package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/example/keeper/internal/core/records"
)

const invalidChoice = "Invalid choice. Please try again."

// menuItem is one numbered entry in a menu.
type menuItem struct {
	label string
	run   func(ctx context.Context, p *prompter) error
}

// prompter reads answers line by line from the menu's input.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// line prints prompt and returns the next trimmed input line.
// It returns io.EOF when input is exhausted.
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// integer reads a whole number. Anything else is an invalid argument.
func (p *prompter) integer(prompt string) (int, error) {
	s, err := p.line(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, records.InvalidArgument("%q is not a whole number", s)
	}
	return n, nil
}

// number reads a decimal number. Anything else is an invalid argument.
func (p *prompter) number(prompt string) (float64, error) {
	s, err := p.line(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, records.InvalidArgument("%q is not a number", s)
	}
	return v, nil
}

// choose reads a choice in 1..n. ok is false for anything else.
func (p *prompter) choose(prompt string, n int) (int, bool, error) {
	s, err := p.line(prompt)
	if err != nil {
		return 0, false, err
	}
	choice, err := strconv.Atoi(s)
	if err != nil || choice < 1 || choice > n {
		return 0, false, nil
	}
	return choice, true, nil
}

// runMenu loops until the user picks 0 or input ends. Errors from an item
// are printed and the loop continues.
func runMenu(ctx context.Context, p *prompter, banner func(ctx context.Context, out io.Writer) error, goodbye string, items []menuItem) error {
	for {
		if banner != nil {
			if err := banner(ctx, p.out); err != nil {
				return err
			}
		}
		fmt.Fprintln(p.out, "\nMain Menu:")
		for i, item := range items {
			fmt.Fprintf(p.out, "%d. %s\n", i+1, item.label)
		}
		fmt.Fprintln(p.out, "0. Exit")

		answer, err := p.line(fmt.Sprintf("Enter your choice (0-%d): ", len(items)))
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return nil
		}
		if err != nil {
			return err
		}
		if answer == "0" {
			fmt.Fprintln(p.out, goodbye)
			return nil
		}

		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > len(items) {
			fmt.Fprintln(p.out, invalidChoice)
			continue
		}

		if err := items[choice-1].run(ctx, p); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.out)
				return nil
			}
			fmt.Fprintf(p.out, "Error: %v\n", err)
		}
	}
}

// subMenu returns an item action that offers items once and runs the pick.
func subMenu(title string, items []menuItem) func(ctx context.Context, p *prompter) error {
	return func(ctx context.Context, p *prompter) error {
		fmt.Fprintf(p.out, "\n%s:\n", title)
		for i, item := range items {
			fmt.Fprintf(p.out, "%d. %s\n", i+1, item.label)
		}

		choice, ok, err := p.choose(fmt.Sprintf("Select option (1-%d): ", len(items)), len(items))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(p.out, "Invalid choice.")
			return nil
		}
		return items[choice-1].run(ctx, p)
	}
}
