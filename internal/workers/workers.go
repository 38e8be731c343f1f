package workers

import (
	"context"
	"time"

	"github.com/mzhakenov/go-goal-keeper/internal/service"
)

// Workers aggregates background workers and starts them in order.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// refreshJobWorker adapts a ClientRefreshJob to the Worker interface.
type refreshJobWorker struct {
	ctx      context.Context
	job      service.ClientRefreshJob
	interval time.Duration
}

// NewRefreshJobWorker wraps the refresh job so the Workers aggregate can
// start it alongside other background work. The job runs until ctx is
// cancelled.
func NewRefreshJobWorker(ctx context.Context, job service.ClientRefreshJob, interval time.Duration) Worker {
	return &refreshJobWorker{ctx: ctx, job: job, interval: interval}
}

func (w *refreshJobWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
