package http

import (
	"time"

	"orderintake/internal/core/application/usecases/queries"
	"orderintake/internal/core/domain/model/order"
)

// RegisterVendorRequest is the body of POST /vendors/.
type RegisterVendorRequest struct {
	Name  string `json:"name" validate:"required" example:"Acme Supplies"`
	Email string `json:"email" validate:"omitempty,email" example:"sales@acme.test"`
}

// SubmitOrderItemRequest is one order line inside SubmitOrderRequest.
type SubmitOrderItemRequest struct {
	ItemName string `json:"item_name" validate:"required" example:"Widget"`
	Quantity int    `json:"quantity" validate:"required" example:"3"`
}

// SubmitOrderRequest is the body of POST /orders/.
type SubmitOrderRequest struct {
	OrderID    string                   `json:"order_id" validate:"required" example:"ORD-001"`
	VendorID   string                   `json:"vendor_id" validate:"required,uuid" example:"8f14e45f-ea8a-4f9a-b7d4-1a2b3c4d5e6f"`
	Priority   string                   `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH low medium high" example:"HIGH"`
	Address    string                   `json:"address" validate:"required" example:"123 Main St"`
	City       string                   `json:"city" validate:"required" example:"Springfield"`
	State      string                   `json:"state" validate:"required" example:"IL"`
	PostalCode string                   `json:"postal_code" validate:"required,min=4" example:"62704"`
	Items      []SubmitOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// VendorResponse is the wire representation of a vendor.
type VendorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItemResponse is the wire representation of one order line.
type OrderItemResponse struct {
	ID       string `json:"id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// OrderResponse is the wire representation of an order with its items.
type OrderResponse struct {
	ID         string              `json:"id"`
	OrderID    string              `json:"order_id"`
	VendorID   string              `json:"vendor_id"`
	Priority   string              `json:"priority"`
	Status     string              `json:"status"`
	Address    string              `json:"address"`
	City       string              `json:"city"`
	State      string              `json:"state"`
	PostalCode string              `json:"postal_code"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Items      []OrderItemResponse `json:"items"`
}

// SubmittedOrderResponse is the body returned by POST /orders/: the freshly
// accepted order with its items and the owning vendor nested.
type SubmittedOrderResponse struct {
	ID         string              `json:"id"`
	OrderID    string              `json:"order_id"`
	VendorID   string              `json:"vendor_id"`
	Priority   string              `json:"priority"`
	Status     string              `json:"status"`
	Address    string              `json:"address"`
	City       string              `json:"city"`
	State      string              `json:"state"`
	PostalCode string              `json:"postal_code"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Items      []OrderItemResponse `json:"items"`
	Vendor     VendorResponse      `json:"vendor"`
}

// OrderStatusResponse is the wire representation of an order's status.
type OrderStatusResponse struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderSummaryResponse aggregates a vendor's order book.
type OrderSummaryResponse struct {
	TotalOrders         int `json:"total_orders"`
	TotalItems          int `json:"total_items"`
	TotalPriorityOrders int `json:"total_priority_orders"`
}

// toVendorResponse maps a vendor read model to its wire representation.
func toVendorResponse(v queries.VendorResponse) VendorResponse {
	return VendorResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
	}
}

// toSubmittedOrderResponse maps a freshly accepted order aggregate plus its
// vendor read model to the submission response.
func toSubmittedOrderResponse(submitted *order.Order, v queries.VendorResponse) SubmittedOrderResponse {
	items := make([]OrderItemResponse, 0, len(submitted.Items()))
	for _, item := range submitted.Items() {
		items = append(items, OrderItemResponse{
			ID:       item.ID().String(),
			ItemName: item.Name(),
			Quantity: item.Quantity(),
		})
	}

	return SubmittedOrderResponse{
		ID:         submitted.ID().String(),
		OrderID:    submitted.OrderID(),
		VendorID:   submitted.VendorID().String(),
		Priority:   submitted.Priority().String(),
		Status:     submitted.Status().String(),
		Address:    submitted.Address().Street(),
		City:       submitted.Address().City(),
		State:      submitted.Address().State(),
		PostalCode: submitted.Address().PostalCode(),
		CreatedAt:  submitted.CreatedAt(),
		UpdatedAt:  submitted.UpdatedAt(),
		Items:      items,
		Vendor:     toVendorResponse(v),
	}
}

// toOrderResponse maps an order read model to its wire representation.
func toOrderResponse(o queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:       item.ID.String(),
			ItemName: item.ItemName,
			Quantity: item.Quantity,
		})
	}

	return OrderResponse{
		ID:         o.ID.String(),
		OrderID:    o.OrderID,
		VendorID:   o.VendorID.String(),
		Priority:   o.Priority,
		Status:     o.Status,
		Address:    o.Address,
		City:       o.City,
		State:      o.State,
		PostalCode: o.PostalCode,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		Items:      items,
	}
}
