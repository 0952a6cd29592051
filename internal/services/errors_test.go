package services_test

import (
	"errors"
	"strings"
	"testing"

	"videolow/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	underlying := errors.New("exit status 1")
	err := services.Wrap(services.ErrExecution, "transcoding", "normalize", "ffmpeg failed", underlying)

	if !errors.Is(err, services.ErrExecution) {
		t.Fatalf("expected execution marker, got %v", err)
	}
	if !errors.Is(err, underlying) {
		t.Fatalf("expected underlying error preserved, got %v", err)
	}
	for _, want := range []string{"transcoding", "normalize", "ffmpeg failed", "exit status 1"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("message %q missing %q", err.Error(), want)
		}
	}
}

func TestWrapWithoutUnderlying(t *testing.T) {
	err := services.Wrap(services.ErrMissingArtifact, "downloading", "", "expected output absent", nil)
	if !errors.Is(err, services.ErrMissingArtifact) {
		t.Fatalf("expected missing artifact marker, got %v", err)
	}
}

func TestWrapNilMarkerDefaultsToExecution(t *testing.T) {
	err := services.Wrap(nil, "cleanup", "", "", nil)
	if !errors.Is(err, services.ErrExecution) {
		t.Fatalf("expected execution fallback, got %v", err)
	}
}

func TestTerminal(t *testing.T) {
	tagged := services.Wrap(services.ErrCleanup, "cleanup", "remove", "", errors.New("busy"))
	if !services.Terminal(tagged) {
		t.Fatal("tagged error should be terminal")
	}
	if services.Terminal(errors.New("plain")) {
		t.Fatal("untagged error should not be terminal")
	}
}
