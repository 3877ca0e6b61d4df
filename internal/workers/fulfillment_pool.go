// Package workers runs background order fulfillment. A FulfillmentPool owns
// the in-memory task queue and a fixed set of worker goroutines that feed
// dequeued tasks to the order processor. The queue is process-local: tasks do
// not survive a restart, and the stuck-order watchdog covers what gets lost.
package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// ErrPoolStopped is returned by Enqueue after Stop has been called.
var ErrPoolStopped = errors.New("fulfillment pool is stopped")

// Processor consumes one fulfillment command per dequeued task.
type Processor interface {
	Handle(ctx context.Context, cmd commands.ProcessOrderCommand) error
}

// FulfillmentPool is a channel-backed implementation of ports.FulfillmentQueue
// with a fixed worker pool. Each enqueued task is delivered to the processor
// exactly once; workers use a background context because a claimed order must
// reach a terminal state even while the pool is shutting down.
type FulfillmentPool struct {
	processor Processor
	tasks     chan ports.FulfillmentTask
	workers   int

	group errgroup.Group

	mu      sync.RWMutex
	stopped bool
}

// NewFulfillmentPool creates a pool with the given worker count and queue
// capacity. Non-positive values fall back to 1 worker and an unbuffered queue.
func NewFulfillmentPool(processor Processor, workers, capacity int) *FulfillmentPool {
	if workers <= 0 {
		workers = 1
	}
	if capacity < 0 {
		capacity = 0
	}

	return &FulfillmentPool{
		processor: processor,
		tasks:     make(chan ports.FulfillmentTask, capacity),
		workers:   workers,
	}
}

// Start launches the worker goroutines. Call once.
func (p *FulfillmentPool) Start() {
	for range p.workers {
		p.group.Go(p.run)
	}
	slog.Info("fulfillment pool started", "workers", p.workers, "capacity", cap(p.tasks))
}

// Enqueue hands one task to the workers, blocking while the queue is full.
// Returns ErrPoolStopped once Stop has been called.
func (p *FulfillmentPool) Enqueue(task ports.FulfillmentTask) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}

	p.tasks <- task
	return nil
}

// Stop rejects new tasks, drains the queue, and waits for the workers to
// finish their current orders.
func (p *FulfillmentPool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.tasks)
	p.mu.Unlock()

	_ = p.group.Wait()
	slog.Info("fulfillment pool stopped")
}

// run is one worker: it drains the task channel until it is closed.
// Processor errors are logged; the loop never aborts on them.
func (p *FulfillmentPool) run() error {
	for task := range p.tasks {
		cmd, err := commands.NewProcessOrderCommand(task.OrderID, task.Expedited)
		if err != nil {
			slog.Error("dropping malformed fulfillment task", "error", err)
			continue
		}

		if err = p.processor.Handle(context.Background(), cmd); err != nil {
			slog.Error("fulfillment task failed",
				"order_id", task.OrderID.String(),
				"error", err)
		}
	}
	return nil
}
