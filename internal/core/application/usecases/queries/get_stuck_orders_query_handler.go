package queries

import (
	"context"
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStuckOrdersQueryHandler retrieves orders stuck in processing.
type GetStuckOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStuckOrdersQueryHandler creates a handler for stuck-order queries.
func NewGetStuckOrdersQueryHandler(db *gorm.DB) GetStuckOrdersQueryHandler {
	return GetStuckOrdersQueryHandler{db: db}
}

// Handle returns orders in processing whose last status change is older than
// the query threshold, oldest first. An empty result is not an error.
func (h GetStuckOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStuckOrdersQuery,
) ([]StuckOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.Threshold())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			vendor_id,
			updated_at
		FROM orders
		WHERE status = ? AND updated_at < ?
		ORDER BY updated_at
	`, order.Processing.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stuck := make([]StuckOrderResponse, 0)
	for rows.Next() {
		var resp StuckOrderResponse
		var id, vendorID uuid.UUID

		if err = rows.Scan(&id, &resp.OrderID, &vendorID, &resp.UpdatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}

		stuck = append(stuck, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stuck, nil
}
