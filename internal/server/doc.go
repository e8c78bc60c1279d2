// Package server runs the maintenance HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown once SIGTERM, SIGINT or SIGQUIT is received.
package server
