// Package prompt renders a GenerationRequest into the single instruction
// string sent to the language model. Rendering is pure and deterministic: the
// same request and schema version always produce the same text.
package prompt
