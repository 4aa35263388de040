// Package response turns the free-form text a language model returns into
// validated domain.GeneratedContent. Extract isolates the JSON object from
// prose and code fences; Validate parses it, checks the required fields of the
// active schema version and applies the small set of deterministic repairs
// (list truncation, search-term padding, hook-variation padding).
package response
