// Package pipeline runs one content generation from a GenerationRequest to a
// validated GeneratedContent.
//
// A run builds the prompt, calls the configured Completer once, isolates and
// validates the JSON in the reply and stamps the format label. A request
// without an API key or business description is rejected with
// generation.ErrSetup before any call is made. Any failure of the live call
// after that point is converted into the offline demo content for the same
// format and language, marked as a fallback and carrying a notice for the
// user. Cancellation by the caller is the exception: it is returned as the
// context's error.
package pipeline
