package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool runs tasks with at most size of them executing at once. Submissions
// never block: tasks beyond the limit wait for a free slot in their own
// goroutine.
type Pool struct {
	group  errgroup.Group
	slots  *semaphore.Weighted
	logger *logger.Logger
}

// NewPool constructs a Pool. A size below one is treated as one.
func NewPool(size int, log *logger.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		slots:  semaphore.NewWeighted(int64(size)),
		logger: log,
	}
}

// Submit schedules task and calls then with its result. Values of ctx are
// passed on to task but its cancellation is not. A panic in task is
// recovered and reported to then as an error.
func (p *Pool) Submit(ctx context.Context, name string, task Task, then Continuation) {
	runCtx := context.WithoutCancel(ctx)

	p.group.Go(func() error {
		// a detached context is never done, so Acquire cannot fail
		_ = p.slots.Acquire(runCtx, 1)
		defer p.slots.Release(1)

		err := p.run(runCtx, name, task)
		if err != nil {
			logger.FromContext(runCtx).Warn().Err(err).
				Str("func", "Pool.Submit").
				Str("task", name).
				Msg("task failed")
		}
		if then != nil {
			then(err)
		}
		return nil
	})
}

func (p *Pool) run(ctx context.Context, name string, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Str("func", "Pool.run").
				Str("task", name).
				Interface("panic", r).
				Msg("task panicked")
			err = fmt.Errorf("task %s panicked: %v", name, r)
		}
	}()

	return task(ctx)
}

// Wait blocks until every submitted task and its continuation returned.
// Tasks submitted from continuations are waited for as well.
func (p *Pool) Wait() {
	_ = p.group.Wait()
}
