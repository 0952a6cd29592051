// Package command runs external tools while inheriting the caller's console
// streams, and separates "could not start" from "ran and failed".
package command

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"videolow/internal/services"
)

// Runner abstracts external command execution so tool clients can be tested
// without spawning real processes.
type Runner interface {
	Run(ctx context.Context, binary string, args []string) error
}

// New returns the process-spawning runner used outside of tests.
func New() Runner {
	return runner{}
}

type runner struct{}

// Run launches the binary and blocks until it exits. Stdout and stderr are
// inherited so the tool's own progress output reaches the console unchanged.
// A start failure is tagged ErrLaunch; a non-zero exit is tagged ErrExecution.
func (runner) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return services.Wrap(services.ErrLaunch, "", binary, "start command", err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return services.Wrap(services.ErrExecution, "", binary, "command failed", err)
		}
		return services.Wrap(services.ErrLaunch, "", binary, "wait for command", err)
	}
	return nil
}
