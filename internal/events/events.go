package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/slidegen/internal/generation"
)

// ProgressEvent records that a generation run reached a stage. Events are
// advisory and carry no data needed for correctness.
type ProgressEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// RunID identifies the pipeline run that emitted the event
	RunID uuid.UUID `json:"run_id"`

	Stage generation.ProgressStage `json:"stage"`

	// At is the timestamp when the stage was reached
	At time.Time `json:"at"`
}

// NewProgressEvent creates a ProgressEvent for runID at stage.
func NewProgressEvent(runID uuid.UUID, stage generation.ProgressStage) *ProgressEvent {
	return &ProgressEvent{
		ID:    uuid.New(),
		RunID: runID,
		Stage: stage,
		At:    time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ProgressEvent) error
}

// HandlerFunc adapts a function to EventHandler.
type HandlerFunc func(ctx context.Context, event *ProgressEvent) error

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ctx context.Context, event *ProgressEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows the pipeline to publish progress without knowing its observers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ProgressEvent) error
}
