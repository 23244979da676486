package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var menuOptions = []string{
	"Pikachu: Abilities, Types, Base Stats",
	"Dynamic Pokémon Info by Name",
	"Count Pokémon by Type",
	"Average Base Experience + Highest Average Speed Type",
	"Count Distinct Abilities and Moves",
	"Group by Type & List Moves + Most Common",
	"Top 3 Pokémon by Stats + Move Diversity",
	"Exit",
}

// menuReports maps menu choices to the aggregate they print.
var menuReports = map[string]string{
	"3": ReportTypes,
	"4": ReportAverages,
	"5": ReportDistinct,
	"6": ReportMoves,
	"7": ReportTop3,
}

// RunMenu runs the interactive loop until the exit option, end of input or
// context cancellation. Errors from a choice are printed and the loop goes on.
// A cancelled context ends the loop with ctx.Err(), even while waiting for input.
func (a *App) RunMenu(ctx context.Context, in io.Reader) error {
	lines := newLineReader(ctx, in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.printMenu()
		choice, err := a.prompt(ctx, lines, fmt.Sprintf("Select an option (1-%d): ", len(menuOptions)))
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(a.out, "\nGoodbye!")
			return nil
		case err != nil:
			fmt.Fprintln(a.out)
			return err
		}

		exit, err := a.dispatch(ctx, lines, choice)
		if ctxErr := ctx.Err(); ctxErr != nil {
			fmt.Fprintln(a.out)
			return ctxErr
		}
		if err != nil {
			a.logger.Debug().Err(err).Str("choice", choice).Msg("Menu option failed")
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
		if exit {
			return nil
		}
	}
}

func (a *App) dispatch(ctx context.Context, lines *lineReader, choice string) (exit bool, err error) {
	switch choice {
	case "1":
		return false, a.ShowRecord(ctx, a.defaultID, false)
	case "2":
		name, err := a.prompt(ctx, lines, "Enter the name of a Pokémon: ")
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return true, err
		}
		if name == "" {
			name = a.defaultID
		}
		return false, a.ShowRecord(ctx, name, false)
	case "8":
		fmt.Fprintln(a.out, "Goodbye!")
		return true, nil
	}

	if report, ok := menuReports[choice]; ok {
		return false, a.Report(ctx, report)
	}

	fmt.Fprintln(a.out, "Invalid option. Please try again.")
	return false, nil
}

func (a *App) printMenu() {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderBanner("--- PokeAPI CLI Challenge ---"))
	b.WriteString("\n")
	for i, opt := range menuOptions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	fmt.Fprint(a.out, b.String())
}

// prompt prints label and waits for one trimmed line. It returns io.EOF at
// end of input and ctx.Err() if the context ends first.
func (a *App) prompt(ctx context.Context, lines *lineReader, label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := lines.next(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// lineReader scans input on its own goroutine so a blocked read never keeps
// the menu from seeing cancellation.
type lineReader struct {
	lines chan string
	err   error // set before lines is closed
}

func newLineReader(ctx context.Context, in io.Reader) *lineReader {
	r := &lineReader{lines: make(chan string)}
	go func() {
		defer close(r.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case r.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		r.err = scanner.Err()
	}()
	return r
}

// next returns the next line, io.EOF once input is exhausted, or ctx.Err().
func (r *lineReader) next(ctx context.Context) (string, error) {
	select {
	case line, ok := <-r.lines:
		if !ok {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			if r.err != nil {
				return "", r.err
			}
			return "", io.EOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
