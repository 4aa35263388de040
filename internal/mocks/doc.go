// Package mocks provides hand-written test doubles for the pipeline's
// collaborators: the model Completer, the generation service used by the HTTP
// handlers, and the preferences store.
//
// Each mock exposes an Fn field per method. A nil Fn falls back to a canned
// behaviour, and calls are recorded for assertions:
//
//	completer := &mocks.MockCompleter{
//	    CompleteFn: func(ctx context.Context, req generation.Completion, onProgress generation.ProgressFunc) (string, error) {
//	        return `{"title":"..."}`, nil
//	    },
//	}
//
// SampleContent returns a GeneratedContent that passes validation.
package mocks
