package plan

import (
	"fmt"
	"path/filepath"
	"strings"

	"videolow/internal/services"
)

// OutputKind selects which deliverables a run produces.
type OutputKind string

const (
	// OutputVideo produces a compatibility-normalized MP4.
	OutputVideo OutputKind = "video"
	// OutputAudio produces an MP3 without touching any video stream.
	OutputAudio OutputKind = "audio"
	// OutputVideoAndAudio produces the normalized MP4 plus an MP3 extracted
	// from it.
	OutputVideoAndAudio OutputKind = "video+audio"
)

// ParseOutputKind maps the CLI format names onto output kinds.
func ParseOutputKind(value string) (OutputKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "mp4", "video":
		return OutputVideo, nil
	case "mp3", "audio":
		return OutputAudio, nil
	case "both", "video+audio":
		return OutputVideoAndAudio, nil
	default:
		return "", services.Wrap(services.ErrConfiguration, "planning", "parse format", fmt.Sprintf("unsupported format %q (want mp4, mp3, or both)", value), nil)
	}
}

// Role describes the lifecycle of a planned artifact.
type Role int

const (
	// RoleIntermediate files exist solely to feed the next stage and are
	// deleted once that stage succeeds.
	RoleIntermediate Role = iota
	// RoleFinal files are the requested deliverables and are never deleted
	// by the pipeline.
	RoleFinal
)

func (r Role) String() string {
	switch r {
	case RoleIntermediate:
		return "intermediate"
	case RoleFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Artifact is one planned filesystem path with its fixed role.
type Artifact struct {
	Path string
	Role Role
}

// Set holds every artifact a run may touch. Fields for artifacts the selected
// output kind never materializes carry an empty Path.
type Set struct {
	Kind OutputKind

	// RawVideo is the unmodified downloaded container, consumed by the
	// normalize stage.
	RawVideo Artifact
	// NormalizedVideo is the compatibility-normalized deliverable.
	NormalizedVideo Artifact
	// Audio is the MP3 deliverable.
	Audio Artifact
}

// Plan computes the artifact set for one run. It is the only place the naming
// convention lives.
func Plan(outputDir, baseName string, kind OutputKind) (Set, error) {
	if err := validateBaseName(baseName); err != nil {
		return Set{}, err
	}

	rawVideo := filepath.Join(outputDir, baseName+".mp4")
	normalized := filepath.Join(outputDir, baseName+"_complete.mp4")
	audio := filepath.Join(outputDir, baseName+".mp3")

	set := Set{Kind: kind}
	switch kind {
	case OutputVideo:
		set.RawVideo = Artifact{Path: rawVideo, Role: RoleIntermediate}
		set.NormalizedVideo = Artifact{Path: normalized, Role: RoleFinal}
	case OutputAudio:
		set.Audio = Artifact{Path: audio, Role: RoleFinal}
	case OutputVideoAndAudio:
		set.RawVideo = Artifact{Path: rawVideo, Role: RoleIntermediate}
		set.NormalizedVideo = Artifact{Path: normalized, Role: RoleFinal}
		set.Audio = Artifact{Path: audio, Role: RoleFinal}
	default:
		return Set{}, services.Wrap(services.ErrConfiguration, "planning", "plan artifacts", fmt.Sprintf("unknown output kind %q", kind), nil)
	}
	return set, nil
}

// Ordered returns the planned artifacts in production order, skipping paths
// the output kind never materializes.
func (s Set) Ordered() []Artifact {
	out := make([]Artifact, 0, 3)
	for _, a := range []Artifact{s.RawVideo, s.NormalizedVideo, s.Audio} {
		if a.Path != "" {
			out = append(out, a)
		}
	}
	return out
}

// Finals returns only the deliverable paths.
func (s Set) Finals() []string {
	finals := make([]string, 0, 2)
	for _, a := range s.Ordered() {
		if a.Role == RoleFinal {
			finals = append(finals, a.Path)
		}
	}
	return finals
}

func validateBaseName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return services.Wrap(services.ErrConfiguration, "planning", "validate name", "base name must not be empty", nil)
	}
	if strings.ContainsAny(trimmed, `/\`) || trimmed != filepath.Base(trimmed) {
		return services.Wrap(services.ErrConfiguration, "planning", "validate name", fmt.Sprintf("base name %q must not contain path separators", name), nil)
	}
	if trimmed == "." || trimmed == ".." {
		return services.Wrap(services.ErrConfiguration, "planning", "validate name", fmt.Sprintf("base name %q is not a usable file name", name), nil)
	}
	return nil
}
