package server

import "context"

// Server is the maintenance server lifecycle.
type Server interface {
	// Run serves until ctx is cancelled or a stop signal arrives, then shuts
	// down gracefully. It returns the listener error if serving failed.
	Run(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx expires.
	Shutdown(ctx context.Context) error
}
