// Package collector gathers the session parameters, the file selection and
// the per-invoice classification codes from the operator's terminal.
package collector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on out and reads single-line answers from in.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	pending chan lineResult
}

// NewPrompter creates a Prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

type lineResult struct {
	line string
	err  error
}

// Ask prints label and returns the answer without its line ending. When def
// is not empty it is shown and returned for an empty answer. io.EOF is
// returned when the input ends before any answer.
func (p *Prompter) Ask(ctx context.Context, label, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	answer, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. An empty answer returns def. Unrecognised
// answers repeat the question.
func (p *Prompter) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	hint := "d/N"
	if def {
		hint = "D/n"
	}
	for {
		answer, err := p.Ask(ctx, fmt.Sprintf("%s (%s)", label, hint), "")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return def, nil
		case "d", "da", "y", "yes":
			return true, nil
		case "n", "ne", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Odgovorite sa 'da' ili 'ne'.")
	}
}

// readLine reads one line, giving up when ctx is cancelled. A read abandoned
// by cancellation is picked up by the next call.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		if r.err != nil && !(r.err == io.EOF && r.line != "") {
			return "", r.err
		}
		return strings.TrimRight(r.line, "\r\n"), nil
	}
}
