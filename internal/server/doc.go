// Package server runs the local HTTP status server of the client.
//
// It owns the listener lifecycle: serving in the background, reporting the
// bound address and graceful shutdown.
package server
