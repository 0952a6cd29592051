package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"videolow/internal/fileutil"
	"videolow/internal/logging"
	"videolow/internal/plan"
	"videolow/internal/services"
)

// Stage identifies one step of a run.
type Stage string

const (
	StagePlanning    Stage = "planning"
	StageDownloading Stage = "downloading"
	StageTranscoding Stage = "transcoding"
	StageExtracting  Stage = "extracting"
	StageCleanup     Stage = "cleanup"
)

// Request describes one run. It is immutable once submitted.
type Request struct {
	SourceURL string
	BaseName  string
	OutputDir string
	Kind      plan.OutputKind
}

// Downloader fetches remote media. Implemented by the ytdlp client.
type Downloader interface {
	DownloadVideo(ctx context.Context, url, outputPath string) error
	DownloadAudio(ctx context.Context, url, outputPath string) error
}

// Transcoder reworks local media. Implemented by the ffmpeg client.
type Transcoder interface {
	Normalize(ctx context.Context, inputPath, outputPath string) error
	ExtractAudio(ctx context.Context, inputPath, outputPath string) error
}

// AbortError reports the stage a run stopped at and why. Any run that does
// not complete returns one; the underlying cause keeps its taxonomy marker.
type AbortError struct {
	Stage Stage
	Err   error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("pipeline aborted at %s: %v", e.Stage, e.Err)
}

func (e *AbortError) Unwrap() error { return e.Err }

// Result reports a completed run.
type Result struct {
	RunID     string
	Artifacts plan.Set
	// Finals lists the deliverable paths that now exist.
	Finals []string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithObserver attaches a stage-transition observer.
func WithObserver(observer Observer) Option {
	return func(p *Pipeline) {
		if observer != nil {
			p.observer = observer
		}
	}
}

// Pipeline drives one request through its stages. Safe for concurrent use:
// runs hold no shared mutable state beyond the filesystem paths they are
// given, and colliding artifact sets are rejected via a lock file.
type Pipeline struct {
	downloader Downloader
	transcoder Transcoder
	logger     *slog.Logger
	observer   Observer
}

// New constructs a pipeline around the given tool clients.
func New(downloader Downloader, transcoder Transcoder, opts ...Option) (*Pipeline, error) {
	if downloader == nil {
		return nil, errors.New("pipeline requires a downloader")
	}
	if transcoder == nil {
		return nil, errors.New("pipeline requires a transcoder")
	}
	p := &Pipeline{
		downloader: downloader,
		transcoder: transcoder,
		logger:     logging.NewNop(),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run executes the request. On success every planned final artifact exists
// and every intermediate has been deleted. On failure the run stops at the
// failing stage and leaves already-produced files in place for inspection.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.SourceURL) == "" {
		return nil, &AbortError{Stage: StagePlanning, Err: services.Wrap(services.ErrConfiguration, string(StagePlanning), "validate request", "source url must not be empty", nil)}
	}

	artifacts, err := plan.Plan(req.OutputDir, req.BaseName, req.Kind)
	if err != nil {
		return nil, &AbortError{Stage: StagePlanning, Err: err}
	}

	if err := fileutil.EnsureDir(req.OutputDir); err != nil {
		return nil, &AbortError{Stage: StagePlanning, Err: services.Wrap(services.ErrConfiguration, string(StagePlanning), "create output directory", "", err)}
	}

	release, err := p.lockArtifacts(req)
	if err != nil {
		return nil, &AbortError{Stage: StagePlanning, Err: err}
	}
	defer release()

	runID := uuid.NewString()
	logger := p.logger.With(
		logging.String("run_id", runID),
		logging.String("source_url", req.SourceURL),
		logging.String("output_kind", string(req.Kind)),
	)
	lifecycle := NewLifecycle(artifacts)

	switch req.Kind {
	case plan.OutputVideo:
		err = p.runVideo(ctx, req, artifacts, lifecycle, runID)
	case plan.OutputAudio:
		err = p.runAudio(ctx, req, artifacts, runID)
	case plan.OutputVideoAndAudio:
		err = p.runVideoAndAudio(ctx, req, artifacts, lifecycle, runID)
	default:
		err = &AbortError{Stage: StagePlanning, Err: services.Wrap(services.ErrConfiguration, string(StagePlanning), "select flow", fmt.Sprintf("unknown output kind %q", req.Kind), nil)}
	}
	if err != nil {
		var abort *AbortError
		if errors.As(err, &abort) {
			logger.Error("run aborted",
				logging.String("stage", string(abort.Stage)),
				logging.Error(abort.Err),
			)
		}
		return nil, err
	}

	result := &Result{RunID: runID, Artifacts: artifacts, Finals: artifacts.Finals()}
	p.observer.PipelineEvent(Event{RunID: runID, Type: EventRunCompleted})
	logger.Info("run completed", logging.String("finals", strings.Join(result.Finals, ", ")))
	return result, nil
}

// runVideo drives download, normalize, and cleanup of the raw download.
func (p *Pipeline) runVideo(ctx context.Context, req Request, artifacts plan.Set, lifecycle *Lifecycle, runID string) error {
	raw := artifacts.RawVideo.Path
	final := artifacts.NormalizedVideo.Path

	if err := p.runStage(ctx, runID, StageDownloading, raw, func(ctx context.Context) error {
		return p.downloader.DownloadVideo(ctx, req.SourceURL, raw)
	}); err != nil {
		return err
	}
	if err := p.requireArtifact(StageDownloading, raw); err != nil {
		return err
	}

	if err := p.runStage(ctx, runID, StageTranscoding, final, func(ctx context.Context) error {
		return p.transcoder.Normalize(ctx, raw, final)
	}); err != nil {
		return err
	}

	return p.cleanup(runID, lifecycle, raw)
}

// runAudio downloads straight to the final audio path; there is nothing to
// transcode and nothing to clean up.
func (p *Pipeline) runAudio(ctx context.Context, req Request, artifacts plan.Set, runID string) error {
	final := artifacts.Audio.Path

	if err := p.runStage(ctx, runID, StageDownloading, final, func(ctx context.Context) error {
		return p.downloader.DownloadAudio(ctx, req.SourceURL, final)
	}); err != nil {
		return err
	}
	return p.requireArtifact(StageDownloading, final)
}

// runVideoAndAudio extends the video flow with an audio extraction from the
// normalized deliverable before the raw download is cleaned up.
func (p *Pipeline) runVideoAndAudio(ctx context.Context, req Request, artifacts plan.Set, lifecycle *Lifecycle, runID string) error {
	raw := artifacts.RawVideo.Path
	video := artifacts.NormalizedVideo.Path
	audio := artifacts.Audio.Path

	if err := p.runStage(ctx, runID, StageDownloading, raw, func(ctx context.Context) error {
		return p.downloader.DownloadVideo(ctx, req.SourceURL, raw)
	}); err != nil {
		return err
	}
	if err := p.requireArtifact(StageDownloading, raw); err != nil {
		return err
	}

	if err := p.runStage(ctx, runID, StageTranscoding, video, func(ctx context.Context) error {
		return p.transcoder.Normalize(ctx, raw, video)
	}); err != nil {
		return err
	}
	if err := p.requireArtifact(StageTranscoding, video); err != nil {
		return err
	}

	if err := p.runStage(ctx, runID, StageExtracting, audio, func(ctx context.Context) error {
		return p.transcoder.ExtractAudio(ctx, video, audio)
	}); err != nil {
		return err
	}

	return p.cleanup(runID, lifecycle, raw)
}

// runStage executes one external operation and reports its transitions.
func (p *Pipeline) runStage(ctx context.Context, runID string, stage Stage, path string, fn func(context.Context) error) error {
	p.observer.PipelineEvent(Event{RunID: runID, Stage: stage, Type: EventStageStarted, Path: path})
	if err := fn(ctx); err != nil {
		p.observer.PipelineEvent(Event{RunID: runID, Stage: stage, Type: EventStageFailed, Path: path, Err: err})
		return &AbortError{Stage: stage, Err: err}
	}
	p.observer.PipelineEvent(Event{RunID: runID, Stage: stage, Type: EventStageCompleted, Path: path})
	return nil
}

// requireArtifact verifies a stage actually produced its output file. A clean
// exit status alone is not trusted: tools can exit 0 without writing output.
func (p *Pipeline) requireArtifact(stage Stage, path string) error {
	exists, err := fileutil.Exists(path)
	if err != nil {
		return &AbortError{Stage: stage, Err: services.Wrap(services.ErrMissingArtifact, string(stage), "verify output", path, err)}
	}
	if !exists {
		return &AbortError{Stage: stage, Err: services.Wrap(services.ErrMissingArtifact, string(stage), "verify output", fmt.Sprintf("expected %s after successful stage", path), nil)}
	}
	return nil
}

func (p *Pipeline) cleanup(runID string, lifecycle *Lifecycle, intermediates ...string) error {
	for _, path := range intermediates {
		if err := lifecycle.MarkConsumed(path); err != nil {
			p.observer.PipelineEvent(Event{RunID: runID, Stage: StageCleanup, Type: EventStageFailed, Path: path, Err: err})
			return &AbortError{Stage: StageCleanup, Err: err}
		}
		p.observer.PipelineEvent(Event{RunID: runID, Stage: StageCleanup, Type: EventArtifactRemoved, Path: path})
	}
	return nil
}

// lockArtifacts guards the request's artifact set against a concurrent run
// using the same base name and output directory.
func (p *Pipeline) lockArtifacts(req Request) (func(), error) {
	lockPath := filepath.Join(req.OutputDir, "."+req.BaseName+".videolow.lock")
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, string(StagePlanning), "lock artifact set", lockPath, err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrConfiguration, string(StagePlanning), "lock artifact set", fmt.Sprintf("another run is already producing %s/%s", req.OutputDir, req.BaseName), nil)
	}
	return func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}, nil
}
