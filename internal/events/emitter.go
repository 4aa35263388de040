package events

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// InMemoryEventEmitter is a simple implementation of the EventEmitter interface
// that stores registered handlers in memory and dispatches events to them
// synchronously.
type InMemoryEventEmitter struct {
	handlers map[int]EventHandler
	nextID   int
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	return &InMemoryEventEmitter{
		handlers: make(map[int]EventHandler),
		logger:   logger.With("component", "in_memory_event_emitter"),
	}
}

// RegisterHandler adds a new event handler to receive events. The returned
// function removes it again and is safe to call more than once.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) (unregister func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.handlers[id] = handler
	e.logger.Debug("registered new event handler", "handler_count", len(e.handlers))

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.handlers, id)
	}
}

// EmitEvent publishes the given event to all registered handlers in
// registration order. If any handler returns an error, the event is still sent
// to all other handlers and the first error encountered is returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *ProgressEvent) error {
	e.mu.RLock()
	ids := make([]int, 0, len(e.handlers))
	handlers := make(map[int]EventHandler, len(e.handlers))
	for id, h := range e.handlers {
		ids = append(ids, id)
		handlers[id] = h
	}
	e.mu.RUnlock()

	slices.Sort(ids)

	e.logger.DebugContext(ctx, "emitting event",
		"event_id", event.ID,
		"run_id", event.RunID,
		"stage", event.Stage,
		"handler_count", len(handlers))

	var firstErr error
	for _, id := range ids {
		if err := handlers[id].HandleEvent(ctx, event); err != nil {
			e.logger.ErrorContext(ctx, "handler failed to process event",
				"error", err,
				"handler_id", id,
				"event_id", event.ID,
				"stage", event.Stage)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// NewLogHandler returns a handler that logs every event at debug level.
func NewLogHandler(logger *slog.Logger) EventHandler {
	logger = logger.With("component", "progress_log")
	return HandlerFunc(func(ctx context.Context, event *ProgressEvent) error {
		logger.DebugContext(ctx, "generation progress",
			"run_id", event.RunID,
			"stage", event.Stage)
		return nil
	})
}
