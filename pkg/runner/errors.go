package runner

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ErrEmptyCommand is returned when Run is called without a program to execute
var ErrEmptyCommand = pkgerrors.New("empty command")

// ExitError is returned when the program ran but exited with a non-zero status.
type ExitError struct {
	Argv   []string
	Code   int
	Stderr string

	err error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", strings.Join(e.Argv, " "), e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.err
}
