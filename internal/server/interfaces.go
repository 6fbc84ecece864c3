package server

import "context"

// Server defines the lifecycle contract for the transport servers managed by
// this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is done or a transport fails, then shuts every
	// transport down. It returns the first transport error.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown(ctx context.Context) error
}
