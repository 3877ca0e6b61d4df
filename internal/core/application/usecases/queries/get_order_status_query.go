package queries

import (
	"errors"
	"strings"
	"time"

	"orderintake/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order_id is required")
)

// GetOrderStatusQuery retrieves the lifecycle status of an order by its
// caller-supplied order identifier. The lookup is not vendor-scoped: when
// several vendors share the identifier, the earliest-created order wins.
type GetOrderStatusQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for an order's status.
// Validates that the order ID is non-blank.
func NewGetOrderStatusQuery(orderID string) (GetOrderStatusQuery, error) {
	query := GetOrderStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the caller-supplied order identifier.
func (q GetOrderStatusQuery) OrderID() string {
	return q.orderID
}

func (q *GetOrderStatusQuery) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	q.orderID = orderID
	return nil
}

// OrderStatusResponse represents an order's current lifecycle status.
type OrderStatusResponse struct {
	OrderID   string
	Status    string
	UpdatedAt time.Time
}
