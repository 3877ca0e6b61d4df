package order

import (
	"fmt"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"
)

// Item is one line (name + quantity) within an order. Items are immutable
// after the order is created.
//
// Invariants:
//   - must have a valid unique identifier
//   - item name must be non-blank
//   - quantity must be strictly greater than 0
type Item struct {
	id       kernel.UUID
	name     string
	quantity int
}

// NewItem creates a validated order line.
// The error for a non-positive quantity names the offending item so that a
// submission with many lines reports which one was rejected.
func NewItem(id kernel.UUID, name string, quantity int) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item_name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("quantity must be greater than 0 for item %q, got %d", name, quantity),
		)
	}

	return Item{
		id:       id,
		name:     name,
		quantity: quantity,
	}, nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity. Always positive.
func (i Item) Quantity() int {
	return i.quantity
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	return i.id.Validate()
}
