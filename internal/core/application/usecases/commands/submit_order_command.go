package commands

import (
	"errors"
	"strings"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrOrderIDIsRequired  = errors.New("order_id is required")
	ErrOrderItemsRequired = errors.New("at least one item is required")
)

// SubmitOrderCommand represents a vendor's request to submit a new order for
// fulfillment. The caller-supplied order ID must be unique within the vendor;
// items and address are already-validated domain values.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("ORD-001", vendorID, order.PriorityHigh, address, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, queue)
//	submitted, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	vendorID kernel.UUID
	priority order.Priority
	address  order.Address
	items    []order.Item

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order.
// Validates that the order ID is non-blank, the vendor ID and priority are
// valid, the address is constructed, and at least one item is present.
func NewSubmitOrderCommand(
	orderID string,
	vendorID kernel.UUID,
	priority order.Priority,
	address order.Address,
	items []order.Item,
) (SubmitOrderCommand, error) {
	orderCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setVendorID(vendorID),
		orderCommand.setPriority(priority),
		orderCommand.setAddress(address),
		orderCommand.setItems(items),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the caller-supplied order identifier.
func (c SubmitOrderCommand) OrderID() string {
	return c.orderID
}

// VendorID returns the identifier of the submitting vendor.
func (c SubmitOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Priority returns the order's urgency tier.
func (c SubmitOrderCommand) Priority() order.Priority {
	return c.priority
}

// Address returns the shipping address.
func (c SubmitOrderCommand) Address() order.Address {
	return c.address
}

// Items returns a copy of the order's line items.
func (c SubmitOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c *SubmitOrderCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *SubmitOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *SubmitOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *SubmitOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrOrderItemsRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
