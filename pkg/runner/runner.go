// Package runner executes external programs without a shell.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// maxStderrLen bounds how much stderr is kept in an ExitError.
	maxStderrLen = 240
	// waitDelay bounds how long output is drained after the child is killed.
	waitDelay = 2 * time.Second
)

// Runner runs argv[0] with argv[1:] as literal arguments and returns
// whatever the program wrote to stdout.
type Runner interface {
	Run(ctx context.Context, argv []string) (string, error)
}

// Func adapts an ordinary function to a Runner.
type Func func(ctx context.Context, argv []string) (string, error)

// Run calls f(ctx, argv).
func (f Func) Run(ctx context.Context, argv []string) (string, error) {
	return f(ctx, argv)
}

var _ Runner = &Exec{}

// Exec is a Runner backed by os/exec.
type Exec struct {
	// Env is passed to the child as-is. Nil inherits the current environment.
	Env []string
}

// NewExec returns a Runner that spawns real processes.
func NewExec() *Exec {
	return &Exec{}
}

func (e *Exec) Run(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 || argv[0] == "" {
		return "", ErrEmptyCommand
	}

	logger := logrus.WithField("argv", argv)
	logger.Debug("running command")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = e.Env
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		logger.WithField("stdoutBytes", stdout.Len()).Trace("command finished")
		return stdout.String(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.WithField("exitCode", exitErr.ExitCode()).Debug("command failed")
		return stdout.String(), &ExitError{
			Argv:   argv,
			Code:   exitErr.ExitCode(),
			Stderr: truncateOneLine(stderr.String(), maxStderrLen),
			err:    err,
		}
	}

	return stdout.String(), pkgerrors.Wrapf(err, "failed to run %s", argv[0])
}

func truncateOneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
