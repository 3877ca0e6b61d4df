package queries

import (
	"context"

	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler computes per-vendor order aggregates.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the summary aggregation in a single query.
// Returns errs.ErrObjectNotFound when the vendor has no orders at all,
// matching the behavior of the summary endpoint.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (*OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var resp OrderSummaryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT o.id),
			COALESCE(SUM(oi.quantity), 0),
			COUNT(DISTINCT o.id) FILTER (WHERE o.priority = ?)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.vendor_id = ?
	`, order.PriorityHigh.String(), query.VendorID().Bytes()).Row()

	err := row.Scan(&resp.TotalOrders, &resp.TotalItems, &resp.TotalPriorityOrders)
	if err != nil {
		return nil, err
	}

	if resp.TotalOrders == 0 {
		return nil, errs.NewObjectNotFoundError("orders for vendor", query.VendorID().String())
	}

	return &resp, nil
}
