// Package workers runs background jobs next to the transport servers.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusReporter receives the outcome of each health probe.
type StatusReporter interface {
	SetServing(serving bool)
}
