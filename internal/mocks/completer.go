package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/slidegen/internal/generation"
)

// MockCompleter implements generation.Completer for testing
type MockCompleter struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, req generation.Completion, onProgress generation.ProgressFunc) (string, error)

	// Default response values
	Reply string
	Err   error

	// Stages are reported through onProgress before the default response is
	// returned. Ignored when CompleteFn is set.
	Stages []generation.ProgressStage

	mu    sync.Mutex
	calls []generation.Completion
}

// Complete implements the generation.Completer interface
func (m *MockCompleter) Complete(
	ctx context.Context,
	req generation.Completion,
	onProgress generation.ProgressFunc,
) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, req, onProgress)
	}

	for _, stage := range m.Stages {
		onProgress.Report(stage)
	}
	return m.Reply, m.Err
}

// Calls returns a copy of every Completion passed to Complete.
func (m *MockCompleter) Calls() []generation.Completion {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generation.Completion(nil), m.calls...)
}

// CallCount returns how many times Complete was called.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// NewMockCompleterWithReply creates a MockCompleter that reports the usual
// client stages and returns reply.
func NewMockCompleterWithReply(reply string) *MockCompleter {
	return &MockCompleter{
		Reply: reply,
		Stages: []generation.ProgressStage{
			generation.StageGenerating,
			generation.StageProcessing,
			generation.StageFinalizing,
		},
	}
}

// NewMockCompleterWithError creates a MockCompleter that returns err.
func NewMockCompleterWithError(err error) *MockCompleter {
	return &MockCompleter{
		Err:    err,
		Stages: []generation.ProgressStage{generation.StageGenerating},
	}
}

// Reset clears the call tracking state
func (m *MockCompleter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
