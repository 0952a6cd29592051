package pipeline

import (
	"log/slog"

	"videolow/internal/logging"
)

// EventType classifies a pipeline event.
type EventType string

const (
	EventStageStarted    EventType = "stage_started"
	EventStageCompleted  EventType = "stage_completed"
	EventStageFailed     EventType = "stage_failed"
	EventArtifactRemoved EventType = "artifact_removed"
	EventRunCompleted    EventType = "run_completed"
)

// Event describes one stage transition of a run.
type Event struct {
	RunID string
	Stage Stage
	Type  EventType
	// Path carries the artifact the event refers to, when there is one.
	Path string
	Err  error
}

// Observer receives stage-transition events. Implementations must not block:
// the pipeline calls them inline.
type Observer interface {
	PipelineEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) PipelineEvent(event Event) { f(event) }

// NewLogObserver adapts events onto a structured logger.
func NewLogObserver(logger *slog.Logger) Observer {
	return ObserverFunc(func(event Event) {
		attrs := []logging.Attr{
			logging.String("run_id", event.RunID),
			logging.String("stage", string(event.Stage)),
		}
		if event.Path != "" {
			attrs = append(attrs, logging.String("path", event.Path))
		}
		switch event.Type {
		case EventStageFailed:
			attrs = append(attrs, logging.Error(event.Err))
			logger.Error(string(event.Type), logging.Args(attrs...)...)
		default:
			logger.Info(string(event.Type), logging.Args(attrs...)...)
		}
	})
}

type nopObserver struct{}

func (nopObserver) PipelineEvent(Event) {}
