package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestNewProgressEvent(t *testing.T) {
	t.Parallel()

	runID := uuid.New()
	event := NewProgressEvent(runID, generation.StageGenerating)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, runID, event.RunID)
	assert.Equal(t, generation.StageGenerating, event.Stage)
	assert.WithinDuration(t, time.Now(), event.At, 2*time.Second)

	other := NewProgressEvent(runID, generation.StageGenerating)
	assert.NotEqual(t, event.ID, other.ID, "every event gets its own ID")
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	mu sync.Mutex
	// The last event received by this handler
	LastEvent *ProgressEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *ProgressEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestEventHandler(t *testing.T) {
	t.Parallel()

	handler := &MockEventHandler{}
	event := NewProgressEvent(uuid.New(), generation.StagePreparing)

	err := handler.HandleEvent(context.Background(), event)
	assert.NoError(t, err)
	assert.Equal(t, 1, handler.HandledCount)
	assert.Equal(t, event, handler.LastEvent)

	expectedErr := errors.New("handler error")
	handler.HandlerError = expectedErr
	err = handler.HandleEvent(context.Background(), event)
	assert.Equal(t, expectedErr, err)
	assert.Equal(t, 2, handler.HandledCount)
}

func TestHandlerFunc(t *testing.T) {
	t.Parallel()

	var got *ProgressEvent
	h := HandlerFunc(func(ctx context.Context, event *ProgressEvent) error {
		got = event
		return nil
	})

	event := NewProgressEvent(uuid.New(), generation.StageFinalizing)
	assert.NoError(t, h.HandleEvent(context.Background(), event))
	assert.Same(t, event, got)
}
