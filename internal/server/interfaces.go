package server

import "context"

// Server defines the lifecycle contract for the transport server managed
// by this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the listener
	// fails, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within ctx's deadline.
	Shutdown(ctx context.Context) error
}
