// Package task runs fire-and-forget work off the webhook reply path.
// Discord gives handlers a short synchronous response window; anything that
// talks to the arbiter or the message API runs here instead, with failures
// going to the log rather than the reply.
package task

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner dispatches named background tasks with a bounded lifetime.
type Runner struct {
	log     *logrus.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewRunner constructs a Runner. timeout bounds each task's context; zero
// means no deadline.
func NewRunner(log *logrus.Logger, timeout time.Duration) *Runner {
	return &Runner{
		log:     log,
		timeout: timeout,
	}
}

// Go runs fn in a new goroutine. The caller never waits on it; a returned
// error is logged under the task name and otherwise dropped.
func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx := context.Background()
		if r.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}

		if err := fn(ctx); err != nil {
			r.log.WithField("task", name).Warnf("Background task failed: %v", err)
		}
	}()
}

// Wait blocks until all dispatched tasks have finished. Used on shutdown and
// in tests; the request path never calls it.
func (r *Runner) Wait() {
	r.wg.Wait()
}
