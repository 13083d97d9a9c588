// Package workers runs the server's background jobs: connection monitoring
// of the backing stores and removal of expired sessions.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
