// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The (order_id, vendor_id) pair carries a composite unique index so a vendor
// cannot submit the same order identifier twice, while different vendors may
// reuse the same identifier. Items reference the order with an ON DELETE
// CASCADE foreign key.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_orders_order_id_vendor_id,priority:1"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_orders_order_id_vendor_id,priority:2"`
	Priority   string    `gorm:"type:varchar(10);not null"`
	Status     string    `gorm:"type:varchar(20);not null;index"`
	Address    string    `gorm:"type:varchar(255);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	State      string    `gorm:"type:varchar(100);not null"`
	PostalCode string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. Position preserves the
// submission order of the lines.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemName string    `gorm:"type:varchar(255);not null"`
	Quantity int       `gorm:"not null"`
	Position int       `gorm:"not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			ItemName: item.Name(),
			Quantity: item.Quantity(),
			Position: i,
		})
	}

	address := aggregate.Address()
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID(),
		VendorID:   aggregate.VendorID().Bytes(),
		Priority:   aggregate.Priority().String(),
		Status:     aggregate.Status().String(),
		Address:    address.Street(),
		City:       address.City(),
		State:      address.State(),
		PostalCode: address.PostalCode(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Items:      itemDTOs,
	}
}

// toDomain converts a database row to an order domain aggregate.
// Items arrive ordered by position via the preload clause in the repository.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Address, dto.City, dto.State, dto.PostalCode)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, err := kernel.UUIDFromBytes(itemDTO.ID[:])
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(itemID, itemDTO.ItemName, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderID,
		vendorID,
		order.Priority(dto.Priority),
		order.Status(dto.Status),
		address,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
