// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting for the local generation server. It translates HTTP
// concerns to pipeline runs and preference updates.
//
// The server is meant to be bound to loopback: it holds the user's own API key
// and acts on their behalf.
package api
