package async

import "context"

// Worker is a long running background loop. Run blocks until ctx is done or
// Shutdown is called, then calls done exactly once.
type Worker interface {
	Run(ctx context.Context, done func())
	Shutdown()
}
