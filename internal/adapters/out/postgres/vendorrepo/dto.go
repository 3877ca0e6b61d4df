// Package vendorrepo provides data transfer objects and mapping functions for
// vendor persistence. It implements the repository pattern for the vendor
// aggregate, converting between domain entities and database rows.
package vendorrepo

import (
	"time"

	"orderintake/internal/adapters/out/postgres/orderrepo"
	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
// The vendor name carries a unique index; orders reference the vendor with an
// ON DELETE CASCADE foreign key so deleting a vendor removes its orders (and,
// transitively, their items).
type VendorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_vendors_name"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Orders []orderrepo.OrderDTO `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// fromDomain converts a vendor domain aggregate to its database representation.
func fromDomain(vendor *vendor.Vendor) VendorDTO {
	return VendorDTO{
		ID:        vendor.ID().Bytes(),
		Name:      vendor.Name(),
		Email:     vendor.Email(),
		CreatedAt: vendor.CreatedAt(),
		UpdatedAt: vendor.UpdatedAt(),
	}
}

// toDomain converts a database row to a vendor domain aggregate.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(id, dto.Name, dto.Email, dto.CreatedAt, dto.UpdatedAt)
}
