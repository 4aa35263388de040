// Package deepseek implements generation.Completer against an
// OpenAI-compatible chat-completions endpoint, DeepSeek by default.
//
// This package is an infrastructure adapter: it sends the rendered prompt as
// the sole user message, reports progress at fixed lifecycle points and
// translates HTTP and network failures into the generation error taxonomy.
// It makes exactly one attempt per call; deciding what to do with a failure
// is the pipeline's job.
package deepseek
