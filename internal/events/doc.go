// Package events provides progress events for generation runs and an
// in-memory emitter that fans them out to registered handlers.
//
// The pipeline emits a ProgressEvent for every stage it passes through.
// Handlers observe runs without the pipeline knowing who is listening. The
// CLI and the local server register NewLogHandler.
//
// The primary components are:
// - ProgressEvent: one stage reached by one run
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
