// Package http implements the REST transport of the Sudoku backend.
//
// It wires the chi router, the middleware chain (trace id, access log, CORS,
// timeout, required and optional bearer authentication) and the endpoint
// handlers, and translates service errors into status codes and JSON bodies.
package http
