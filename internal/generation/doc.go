// Package generation defines the contracts of the content generation pipeline:
// the Completer boundary to remote text-generation services, the progress
// stages a completer reports, and the error taxonomy every pipeline stage
// returns. Infrastructure adapters (DeepSeek, Gemini) implement Completer;
// the prompt, response and fallback packages return the errors defined here so
// the pipeline can decide between surfacing a setup problem and falling back
// to demo content.
package generation
