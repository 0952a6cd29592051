package pipeline_test

import (
	"errors"
	"path/filepath"
	"testing"

	"videolow/internal/pipeline"
	"videolow/internal/plan"
	"videolow/internal/services"
	"videolow/internal/testsupport"
)

func TestMarkConsumedRemovesIntermediate(t *testing.T) {
	out := t.TempDir()
	set, err := plan.Plan(out, "clip", plan.OutputVideo)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	testsupport.WriteFile(t, set.RawVideo.Path)

	lifecycle := pipeline.NewLifecycle(set)
	if err := lifecycle.MarkConsumed(set.RawVideo.Path); err != nil {
		t.Fatalf("MarkConsumed returned error: %v", err)
	}
	testsupport.AssertAbsent(t, set.RawVideo.Path)
}

func TestMarkConsumedRefusesFinalArtifact(t *testing.T) {
	out := t.TempDir()
	set, err := plan.Plan(out, "clip", plan.OutputVideo)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	testsupport.WriteFile(t, set.NormalizedVideo.Path)

	lifecycle := pipeline.NewLifecycle(set)
	err = lifecycle.MarkConsumed(set.NormalizedVideo.Path)
	if !errors.Is(err, services.ErrCleanup) {
		t.Fatalf("expected cleanup error, got %v", err)
	}
	testsupport.AssertExists(t, set.NormalizedVideo.Path)
}

func TestMarkConsumedRejectsUnplannedPath(t *testing.T) {
	out := t.TempDir()
	set, err := plan.Plan(out, "clip", plan.OutputVideo)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	lifecycle := pipeline.NewLifecycle(set)
	err = lifecycle.MarkConsumed(filepath.Join(out, "stray.mp4"))
	if !errors.Is(err, services.ErrCleanup) {
		t.Fatalf("expected cleanup error, got %v", err)
	}
}

func TestMarkConsumedReportsDeletionFailure(t *testing.T) {
	out := t.TempDir()
	set, err := plan.Plan(out, "clip", plan.OutputVideo)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	// Intermediate never materialized: deletion cannot succeed.
	lifecycle := pipeline.NewLifecycle(set)
	err = lifecycle.MarkConsumed(set.RawVideo.Path)
	if !errors.Is(err, services.ErrCleanup) {
		t.Fatalf("expected cleanup error, got %v", err)
	}
}
