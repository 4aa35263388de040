package generation

import "context"

// ProgressStage is a short machine-readable label describing where a pipeline
// run currently is. Stages are advisory and carry no data needed for
// correctness.
type ProgressStage string

// Progress stages in the order a successful run emits them.
const (
	StagePreparing  ProgressStage = "preparing"
	StageGenerating ProgressStage = "generating"
	StageProcessing ProgressStage = "processing"
	StageFinalizing ProgressStage = "finalizing"
)

// ProgressFunc receives progress stages. A nil ProgressFunc is allowed.
type ProgressFunc func(stage ProgressStage)

// Report calls f when it is non-nil.
func (f ProgressFunc) Report(stage ProgressStage) {
	if f != nil {
		f(stage)
	}
}

// Completion is one single-turn request to a text-generation service.
type Completion struct {
	// Prompt is sent as the sole user message.
	Prompt string

	// APIKey is read for this call only and never cached by a Completer.
	APIKey string

	Model       string
	Temperature float64
	MaxTokens   int
}

// Completer defines the boundary between the pipeline and a remote
// text-generation service. Implementations make exactly one attempt per call
// and must be safe for concurrent use.
type Completer interface {
	// Complete sends the prompt and returns the raw text of the model's reply.
	//
	// Implementations report StageGenerating before sending, StageProcessing
	// once response headers arrive and StageFinalizing after the body is
	// decoded. Errors are *TransportError, *UpstreamError or ErrEmptyResponse.
	Complete(ctx context.Context, req Completion, onProgress ProgressFunc) (string, error)
}
