package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/phrazzld/slidegen/internal/generation"
	"github.com/phrazzld/slidegen/internal/pipeline"
)

// MockGenerationService stands in for pipeline.Service
type MockGenerationService struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, req domain.GenerationRequest, onProgress generation.ProgressFunc) (*pipeline.Result, error)

	mu       sync.Mutex
	requests []domain.GenerationRequest
}

// Generate records req and delegates to GenerateFn. Without GenerateFn it
// reports the usual stages and returns a fallback-free result holding the
// demo-shaped content for req.
func (m *MockGenerationService) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
	onProgress generation.ProgressFunc,
) (*pipeline.Result, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req, onProgress)
	}

	for _, stage := range []generation.ProgressStage{
		generation.StagePreparing,
		generation.StageGenerating,
		generation.StageProcessing,
		generation.StageFinalizing,
	} {
		onProgress.Report(stage)
	}
	return &pipeline.Result{RunID: uuid.New(), Content: SampleContent(req.FormatID)}, nil
}

// Requests returns a copy of every request passed to Generate.
func (m *MockGenerationService) Requests() []domain.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.GenerationRequest(nil), m.requests...)
}

// SampleContent returns valid hook_variations content labelled for formatID.
func SampleContent(formatID domain.FormatID) domain.GeneratedContent {
	return domain.GeneratedContent{
		Title:             "sample title",
		Hook:              "first hook",
		HookVariations:    []string{"first hook", "second hook", "third hook"},
		SelectedHookIndex: 0,
		Slides:            []string{"one", "two", "three", "four", "five"},
		CTA:               "follow for more",
		SearchTerms:       []string{"a", "b", "c", "d", "e"},
		Format:            domain.FormatLabel(formatID),
	}
}
