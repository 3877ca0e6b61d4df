package queries

import (
	"context"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves a vendor's orders from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Orders are sorted HIGH before MEDIUM before LOW
// and by creation time within a tier, then paginated.
// Returns errs.ErrObjectNotFound when the page is empty, matching the
// behavior of the order listing endpoint.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.fetchOrders(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("orders for vendor", query.VendorID().String())
	}

	if err = h.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h ListOrdersQueryHandler) fetchOrders(
	ctx context.Context, query ListOrdersQuery,
) ([]OrderResponse, error) {
	sql := `
		SELECT
			id,
			order_id,
			vendor_id,
			priority,
			status,
			address,
			city,
			state,
			postal_code,
			created_at,
			updated_at
		FROM orders
		WHERE vendor_id = ?`
	args := []any{query.VendorID().Bytes()}

	filter := query.Filter()
	if filter.StartDate != nil {
		sql += " AND created_at >= ?"
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		sql += " AND created_at <= ?"
		args = append(args, *filter.EndDate)
	}
	if filter.Priority != nil {
		sql += " AND priority = ?"
		args = append(args, filter.Priority.String())
	}

	sql += `
		ORDER BY
			CASE priority
				WHEN 'HIGH' THEN 1
				WHEN 'MEDIUM' THEN 2
				ELSE 3
			END,
			created_at
		LIMIT ? OFFSET ?`
	args = append(args, query.Size(), (query.Page()-1)*query.Size())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var resp OrderResponse
		var id, vendorID uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OrderID,
			&vendorID,
			&resp.Priority,
			&resp.Status,
			&resp.Address,
			&resp.City,
			&resp.State,
			&resp.PostalCode,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the items for the page of orders in one query and
// distributes them in submission order.
func (h ListOrdersQueryHandler) attachItems(ctx context.Context, orders []OrderResponse) error {
	index := make(map[kernel.UUID]*OrderResponse, len(orders))
	ids := make([]any, 0, len(orders))
	for i := range orders {
		index[orders[i].ID] = &orders[i]
		ids = append(ids, orders[i].ID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			item_name,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var id, orderID uuid.UUID

		if err = rows.Scan(&id, &orderID, &item.ItemName, &item.Quantity); err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}

		parentID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		if parent, ok := index[parentID]; ok {
			parent.Items = append(parent.Items, item)
		}
	}

	return rows.Err()
}
