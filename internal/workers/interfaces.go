// Package workers runs the background jobs of the notes client next to the
// UI. Each worker lives for the duration of the process context.
package workers

import "context"

// Worker is a long-running background task. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
