package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/nguyentantai21042004/wisdom-flow/internal/config"
	"github.com/nguyentantai21042004/wisdom-flow/pkg/executor"
)

// ErrLocked is returned when another run holds the output directory.
var ErrLocked = errors.New("output directory is in use by another run")

// IOError reports a failed filesystem operation on an output file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Kind is the failure category of a step.
type Kind string

const (
	KindNone         Kind = ""
	KindExternalTool Kind = "external_tool"
	KindIO           Kind = "io"
	KindConfig       Kind = "config"
	KindCanceled     Kind = "canceled"
	KindUnknown      Kind = "unknown"
)

// Classify maps err onto the closed set of failure kinds.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	var exitErr *executor.ExitError
	var execErr *exec.Error
	var cfgErr *config.ConfigError
	var ioErr *IOError

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.As(err, &exitErr), errors.As(err, &execErr):
		return KindExternalTool
	case errors.As(err, &cfgErr):
		return KindConfig
	case errors.As(err, &ioErr):
		return KindIO
	default:
		return KindUnknown
	}
}

// toolOutput returns the diagnostic output of a failed external command, if any.
func toolOutput(err error) (string, bool) {
	var exitErr *executor.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Output(), true
	}
	return "", false
}
