package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"osmbox/internal/config"
	"osmbox/internal/tui"
)

var unknownCommandPattern = regexp.MustCompile(`unknown command "([^"]+)"`)

// ViewerRunner starts the interactive viewer and blocks until it exits.
type ViewerRunner func(ctx context.Context, opts tui.Options) error

// Dependencies wires runtime services.
type Dependencies struct {
	Config    *config.Config
	Version   string
	Now       func() time.Time
	RunViewer ViewerRunner
}

func (d Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Dependencies) presets() config.Presets {
	if d.Config == nil {
		return nil
	}
	return d.Config.Presets
}

// exitError carries a process exit code alongside the message.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

// Execute runs the CLI with injected dependencies and returns the exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout io.Writer, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if matches := unknownCommandPattern.FindStringSubmatch(err.Error()); len(matches) > 1 {
		_, _ = fmt.Fprintf(stderr, "error: no such command %q\n", matches[1])
		return 2
	}

	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	var controlled *exitError
	if errors.As(err, &controlled) {
		return controlled.code
	}
	return 1
}
