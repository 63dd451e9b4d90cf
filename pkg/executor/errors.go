package executor

import (
	"errors"
	"fmt"
	"strings"
)

// ExitError reports an external command that ran but exited non-zero.
// Stdout and Stderr hold whatever the command printed before exiting.
type ExitError struct {
	Name     string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command '%s' exited with code %d", e.Name, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\nstderr: " + s
	}
	return msg
}

// Output returns the diagnostic text the command produced, preferring stderr.
func (e *ExitError) Output() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(e.Stdout)
}

// ErrInvalidUTF8 is returned when a command's output cannot be decoded as UTF-8.
var ErrInvalidUTF8 = errors.New("output is not valid UTF-8")
