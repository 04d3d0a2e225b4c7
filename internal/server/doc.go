// Package server runs the reference API server's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
