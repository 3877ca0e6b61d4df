// Package ports defines repository and infrastructure interfaces for the
// order-intake domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	// Add persists a new vendor aggregate to storage.
	// Returns errs.ErrObjectAlreadyExists if the vendor name is already taken.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound if no vendor exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetByName retrieves a vendor aggregate by its unique name.
	// Returns errs.ErrObjectNotFound if no vendor exists with the given name.
	GetByName(ctx context.Context, name string) (*vendor.Vendor, error)
}
