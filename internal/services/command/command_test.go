package command_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"videolow/internal/services"
	"videolow/internal/services/command"
)

func TestRunSuccess(t *testing.T) {
	runner := command.New()
	if err := runner.Run(context.Background(), "sh", []string{"-c", "exit 0"}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestRunNonZeroExitIsExecutionError(t *testing.T) {
	runner := command.New()
	err := runner.Run(context.Background(), "sh", []string{"-c", "exit 3"})
	if !errors.Is(err, services.ErrExecution) {
		t.Fatalf("expected execution error, got %v", err)
	}
}

func TestRunMissingBinaryIsLaunchError(t *testing.T) {
	runner := command.New()
	missing := filepath.Join(t.TempDir(), "no-such-tool")
	err := runner.Run(context.Background(), missing, nil)
	if !errors.Is(err, services.ErrLaunch) {
		t.Fatalf("expected launch error, got %v", err)
	}
}
