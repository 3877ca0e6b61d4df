package queries

import (
	"errors"
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// DefaultPageSize is used when the caller does not request a page size.
const DefaultPageSize = 10

// ListOrdersFilter narrows an order listing. All fields are optional;
// nil means the dimension is not filtered.
type ListOrdersFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Priority  *order.Priority
}

// ListOrdersQuery retrieves a vendor's orders, optionally filtered by creation
// date and priority, ordered by priority tier (HIGH first) then creation time.
//
// Example:
//
//	high := order.PriorityHigh
//	query, err := NewListOrdersQuery(vendorID, ListOrdersFilter{Priority: &high}, 1, 20)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	filter   ListOrdersFilter
	page     int
	size     int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a vendor's orders.
// Non-positive page or size fall back to the first page and DefaultPageSize.
func NewListOrdersQuery(
	vendorID kernel.UUID, filter ListOrdersFilter, page, size int,
) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVendorID(vendorID); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := query.setFilter(filter); err != nil {
		return ListOrdersQuery{}, err
	}
	query.setPagination(page, size)

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// VendorID returns the identifier of the vendor whose orders are listed.
func (q ListOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// Filter returns the optional listing filters.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListOrdersQuery) Size() int {
	return q.size
}

func (q *ListOrdersQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	q.vendorID = vendorID
	return nil
}

func (q *ListOrdersQuery) setFilter(filter ListOrdersFilter) error {
	if filter.Priority != nil {
		if err := filter.Priority.Validate(); err != nil {
			return err
		}
	}

	q.filter = filter
	return nil
}

func (q *ListOrdersQuery) setPagination(page, size int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	q.page = page
	q.size = size
}

// OrderItemResponse represents one order line in query results.
type OrderItemResponse struct {
	ID       kernel.UUID
	ItemName string
	Quantity int
}

// OrderResponse represents one order, including its items, in query results.
type OrderResponse struct {
	ID         kernel.UUID
	OrderID    string
	VendorID   kernel.UUID
	Priority   string
	Status     string
	Address    string
	City       string
	State      string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Items      []OrderItemResponse
}
