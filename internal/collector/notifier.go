package collector

import (
	"fmt"
	"io"
)

// Notification titles.
const (
	TitleError   = "Greška"
	TitleWarning = "Upozorenje"
	TitleSuccess = "Uspeh"
)

// Notifier prints operator-facing messages.
type Notifier struct {
	out io.Writer
}

// NewNotifier creates a Notifier writing to out.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Error reports a failure.
func (n *Notifier) Error(msg string) {
	n.print(TitleError, msg)
}

// Warn reports a condition that stops the run without being an error.
func (n *Notifier) Warn(msg string) {
	n.print(TitleWarning, msg)
}

// Success reports a completed step.
func (n *Notifier) Success(msg string) {
	n.print(TitleSuccess, msg)
}

func (n *Notifier) print(title, msg string) {
	fmt.Fprintf(n.out, "[%s] %s\n", title, msg)
}
