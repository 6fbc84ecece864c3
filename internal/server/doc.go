// Package server runs the HTTP API and the optional gRPC health service.
//
// It starts every enabled transport, waits for a stop signal or a transport
// failure and then shuts all of them down within a bounded timeout.
package server
