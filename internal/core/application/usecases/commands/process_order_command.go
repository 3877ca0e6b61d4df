package commands

import (
	"errors"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/guard"
)

var ErrProcessOrderCommandIsNotConstructed = errors.New(
	"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
)

// ProcessOrderCommand represents a request to run one order through its
// fulfillment pipeline. Issued by the background workers, one command per
// dequeued task.
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	expedited bool

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command to process a submitted order.
// The expedited flag selects the pipeline variant and is fixed at submission
// time from the order's priority.
func NewProcessOrderCommand(orderID kernel.UUID, expedited bool) (ProcessOrderCommand, error) {
	orderCommand := ProcessOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return ProcessOrderCommand{}, err
	}
	orderCommand.expedited = expedited

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrderCommandIsNotConstructed if validation fails.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to process.
func (c ProcessOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Expedited reports whether the expedited pipeline variant should run.
func (c ProcessOrderCommand) Expedited() bool {
	return c.expedited
}

func (c *ProcessOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
