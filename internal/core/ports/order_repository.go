package ports

import (
	"context"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored atomically with their line items.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its items.
	// The insert is atomic: a failure leaves no partial order or orphaned items.
	// Returns errs.ErrObjectAlreadyExists when the (order_id, vendor_id) pair
	// is already taken, including when a concurrent submission wins the race
	// and the unique index rejects this insert.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the status (and updated-at timestamp) changes after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its items. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderID retrieves an order by the caller-supplied order identifier
	// scoped to a vendor. Used for the duplicate-submission check.
	// Returns errs.ErrObjectNotFound if absent.
	GetByOrderID(ctx context.Context, orderID string, vendorID kernel.UUID) (*order.Order, error)
}
