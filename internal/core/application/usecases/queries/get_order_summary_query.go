package queries

import (
	"errors"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery aggregates a vendor's order book: how many orders, how
// many units across all line items, and how many HIGH-priority orders.
type GetOrderSummaryQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a summary query for one vendor.
func NewGetOrderSummaryQuery(vendorID kernel.UUID) (GetOrderSummaryQuery, error) {
	query := GetOrderSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVendorID(vendorID); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderSummaryQueryIsNotConstructed if validation fails.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// VendorID returns the identifier of the summarized vendor.
func (q GetOrderSummaryQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetOrderSummaryQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	q.vendorID = vendorID
	return nil
}

// OrderSummaryResponse aggregates one vendor's orders.
// TotalItems sums the quantities of every line item.
type OrderSummaryResponse struct {
	TotalOrders         int
	TotalItems          int
	TotalPriorityOrders int
}
