package workers

import (
	"context"
	"sync"
	"time"
)

// Workers runs a fixed set of workers on their own goroutines.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers more workers. It must be called before Run.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run starts every worker and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until all started workers have returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// Ticker is a Worker that calls fn every interval until ctx is done.
type Ticker struct {
	interval time.Duration
	fn       func()
}

func NewTicker(interval time.Duration, fn func()) *Ticker {
	return &Ticker{interval: interval, fn: fn}
}

func (t *Ticker) Run(ctx context.Context) {
	if t.interval <= 0 {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fn()
		}
	}
}
