// Package server wires and runs the application's HTTP server.
//
// It provides orchestration for the server lifecycle: startup, background
// workers, signal handling, graceful shutdown and the ordered release of
// resources (rate limiter store, database pool, log sink) registered as
// shutdown hooks.
package server
