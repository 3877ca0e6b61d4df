package ports

import (
	"orderintake/internal/core/domain/model/kernel"
)

// FulfillmentTask identifies one order handed to the background processor.
// The pipeline variant is fixed at enqueue time from the order's priority.
type FulfillmentTask struct {
	OrderID   kernel.UUID
	Expedited bool
}

// FulfillmentQueue accepts tasks for asynchronous order processing.
// Submitting a task is fire-and-forget: the caller gets no completion signal,
// and a task runs to a terminal order state without retry or cancellation.
// Implementations must deliver each enqueued task to a processor at most once.
type FulfillmentQueue interface {
	// Enqueue hands one task to the background processor.
	// Returns an error only if the queue is no longer accepting work.
	Enqueue(task FulfillmentTask) error
}
