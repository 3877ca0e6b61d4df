package order

import (
	"errors"
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDIsRequired is returned when the caller-supplied order identifier is empty.
	ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order_id")

	// ErrItemsAreRequired is returned when an order is created without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root for a vendor's order. It owns its line items
// and drives the status state machine from pending through background
// fulfillment to a terminal state.
//
// Invariants:
//   - must have a valid unique identifier and owning vendor identifier
//   - the caller-supplied order ID (vendor-scoped, not globally unique) is non-empty
//   - priority is a valid tier; status follows the transitions defined on Status
//   - at least one item; every item holds a positive quantity
//   - shipping address is a validated Address value object
//   - items and address are immutable after creation; only status (and the
//     updated-at timestamp) mutates, and only via the transition methods
type Order struct {
	id       kernel.UUID
	orderID  string
	vendorID kernel.UUID
	priority Priority
	status   Status
	address  Address
	items    []Item

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in pending status with the supplied items.
// All invariants are checked; the order is created with fresh timestamps.
func NewOrder(
	id kernel.UUID,
	orderID string,
	vendorID kernel.UUID,
	priority Priority,
	address Address,
	items []Item,
) (*Order, error) {
	now := time.Now().UTC()
	return newOrder(id, orderID, vendorID, priority, Pending, address, items, now, now)
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status and timestamps. The same invariants as NewOrder apply, plus the
// status must be a valid lifecycle state.
func RestoreOrder(
	id kernel.UUID,
	orderID string,
	vendorID kernel.UUID,
	priority Priority,
	status Status,
	address Address,
	items []Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return newOrder(id, orderID, vendorID, priority, status, address, items, createdAt, updatedAt)
}

func newOrder(
	id kernel.UUID,
	orderID string,
	vendorID kernel.UUID,
	priority Priority,
	status Status,
	address Address,
	items []Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderID == "" {
		return nil, ErrOrderIDIsRequired
	}
	if err := vendorID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("vendor_id", err)
	}
	if err := priority.Validate(); err != nil {
		return nil, err
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		orderID:       orderID,
		vendorID:      vendorID,
		priority:      priority,
		status:        status,
		address:       address,
		items:         append([]Item(nil), items...),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderID returns the caller-supplied order identifier.
// It is unique per vendor, not globally.
func (o *Order) OrderID() string {
	return o.orderID
}

// VendorID returns the identifier of the owning vendor.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// Priority returns the order's urgency tier.
func (o *Order) Priority() Priority {
	return o.priority
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Address returns the shipping address.
func (o *Order) Address() Address {
	return o.address
}

// Items returns a copy of the order's line items in submission order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// StartProcessing transitions the order from pending to processing.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	o.setStatus(newStatus)
	return nil
}

// MarkProcessed transitions the order from processing to the terminal
// processed status.
func (o *Order) MarkProcessed() error {
	newStatus, err := o.status.MarkProcessed()
	if err != nil {
		return err
	}

	o.setStatus(newStatus)
	return nil
}

// MarkFailed transitions the order from pending or processing to the terminal
// failed status.
func (o *Order) MarkFailed() error {
	newStatus, err := o.status.MarkFailed()
	if err != nil {
		return err
	}

	o.setStatus(newStatus)
	return nil
}

func (o *Order) setStatus(status Status) {
	o.status = status
	o.updatedAt = time.Now().UTC()
}
