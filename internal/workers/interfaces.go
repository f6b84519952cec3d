// Package workers runs background pipeline stages on a bounded pool of
// goroutines.
//
// A submitted [Task] is never cancelled once accepted: it runs on a context
// detached from the submitter's cancellation, and its continuation always
// observes the outcome.
package workers

import "context"

// Task is one unit of background work.
type Task func(ctx context.Context) error

// Continuation receives the outcome of a [Task] after it returned.
type Continuation func(err error)
