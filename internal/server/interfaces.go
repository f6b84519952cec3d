package server

import "context"

// Server defines the lifecycle contract of the status server.
//
// RunServer blocks until the server stops. Shutdown waits for in-flight
// requests or until ctx is done.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error

	// Addr returns the bound address once the server is listening.
	Addr() string
}
