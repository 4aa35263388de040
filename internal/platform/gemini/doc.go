// Package gemini implements generation.Completer using Google's Gemini API
// through the google.golang.org/genai client.
//
// This package is an infrastructure adapter in the hexagonal architecture. It
// sends the rendered prompt as a single user turn, reports progress at fixed
// lifecycle points through an instrumented transport and translates API and
// network failures into the generation error taxonomy. Like every Completer it
// makes exactly one attempt per call.
package gemini
