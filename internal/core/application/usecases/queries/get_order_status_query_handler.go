package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderintake/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler retrieves order status from the database.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the status lookup. When multiple vendors reuse the same
// order identifier, the earliest-created order is returned.
// Returns errs.ErrObjectNotFound if no order carries the identifier.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (*OrderStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var resp OrderStatusResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			status,
			updated_at
		FROM orders
		WHERE order_id = ?
		ORDER BY created_at
		LIMIT 1
	`, query.OrderID()).Row()

	if err := row.Scan(&resp.OrderID, &resp.Status, &resp.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return nil, err
	}

	return &resp, nil
}
