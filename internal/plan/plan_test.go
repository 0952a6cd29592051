package plan_test

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"videolow/internal/plan"
	"videolow/internal/services"
)

func TestPlanVideo(t *testing.T) {
	set, err := plan.Plan("out", "clip", plan.OutputVideo)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if set.RawVideo.Path != filepath.Join("out", "clip.mp4") {
		t.Fatalf("unexpected raw video path: %q", set.RawVideo.Path)
	}
	if set.RawVideo.Role != plan.RoleIntermediate {
		t.Fatalf("raw video should be intermediate, got %v", set.RawVideo.Role)
	}
	if set.NormalizedVideo.Path != filepath.Join("out", "clip_complete.mp4") {
		t.Fatalf("unexpected normalized path: %q", set.NormalizedVideo.Path)
	}
	if set.NormalizedVideo.Role != plan.RoleFinal {
		t.Fatalf("normalized video should be final, got %v", set.NormalizedVideo.Role)
	}
	if set.Audio.Path != "" {
		t.Fatalf("video run must not plan an audio artifact, got %q", set.Audio.Path)
	}
}

func TestPlanAudio(t *testing.T) {
	set, err := plan.Plan("out", "clip", plan.OutputAudio)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if set.Audio.Path != filepath.Join("out", "clip.mp3") {
		t.Fatalf("unexpected audio path: %q", set.Audio.Path)
	}
	if set.Audio.Role != plan.RoleFinal {
		t.Fatalf("audio should be final, got %v", set.Audio.Role)
	}
	if set.RawVideo.Path != "" || set.NormalizedVideo.Path != "" {
		t.Fatal("audio run must not plan any mp4 artifacts")
	}
}

func TestPlanVideoAndAudio(t *testing.T) {
	set, err := plan.Plan("out", "clip", plan.OutputVideoAndAudio)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	ordered := set.Ordered()
	if len(ordered) != 3 {
		t.Fatalf("expected three artifacts, got %d", len(ordered))
	}
	finals := set.Finals()
	want := []string{
		filepath.Join("out", "clip_complete.mp4"),
		filepath.Join("out", "clip.mp3"),
	}
	if !reflect.DeepEqual(finals, want) {
		t.Fatalf("unexpected finals: got %v want %v", finals, want)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	first, err := plan.Plan("media", "talk", plan.OutputVideoAndAudio)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	second, err := plan.Plan("media", "talk", plan.OutputVideoAndAudio)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("plans differ: %v vs %v", first, second)
	}
}

func TestPlanRejectsUnsafeBaseNames(t *testing.T) {
	cases := []string{"", "  ", "a/b", `a\b`, "../escape", ".", ".."}
	for _, name := range cases {
		if _, err := plan.Plan("out", name, plan.OutputVideo); !errors.Is(err, services.ErrConfiguration) {
			t.Fatalf("base name %q: expected configuration error, got %v", name, err)
		}
	}
}

func TestParseOutputKind(t *testing.T) {
	cases := map[string]plan.OutputKind{
		"mp4":   plan.OutputVideo,
		"MP4":   plan.OutputVideo,
		"video": plan.OutputVideo,
		"mp3":   plan.OutputAudio,
		"audio": plan.OutputAudio,
		"both":  plan.OutputVideoAndAudio,
	}
	for input, want := range cases {
		got, err := plan.ParseOutputKind(input)
		if err != nil {
			t.Fatalf("ParseOutputKind(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseOutputKind(%q) = %q, want %q", input, got, want)
		}
	}
	if _, err := plan.ParseOutputKind("flac"); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for unsupported format, got %v", err)
	}
}
