package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marks an invalid request or configuration shape,
	// detected before any external tool runs.
	ErrConfiguration = errors.New("configuration error")
	// ErrLaunch marks an external tool that could not be started at all.
	ErrLaunch = errors.New("launch error")
	// ErrExecution marks an external tool that ran and reported failure.
	ErrExecution = errors.New("execution error")
	// ErrMissingArtifact marks an expected file absent after a stage that
	// reported success.
	ErrMissingArtifact = errors.New("missing artifact")
	// ErrCleanup marks a failed deletion of an intermediate artifact.
	ErrCleanup = errors.New("cleanup error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExecution
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Terminal reports whether the error belongs to the pipeline taxonomy at all.
// Every tagged failure is terminal for the current run; nothing is retried.
func Terminal(err error) bool {
	for _, marker := range []error{ErrConfiguration, ErrLaunch, ErrExecution, ErrMissingArtifact, ErrCleanup} {
		if errors.Is(err, marker) {
			return true
		}
	}
	return false
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
