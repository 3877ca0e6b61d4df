package queries

import (
	"errors"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/guard"
)

var ErrGetVendorQueryIsNotConstructed = errors.New(
	"GetVendorQuery must be created via NewGetVendorQuery constructor",
)

// GetVendorQuery retrieves a single vendor by its identifier.
type GetVendorQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorQuery creates a query to retrieve one vendor.
// Validates that the vendor ID is a properly constructed UUID.
func NewGetVendorQuery(vendorID kernel.UUID) (GetVendorQuery, error) {
	query := GetVendorQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVendorID(vendorID); err != nil {
		return GetVendorQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVendorQueryIsNotConstructed if validation fails.
func (q GetVendorQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorQueryIsNotConstructed)
}

// VendorID returns the identifier of the requested vendor.
func (q GetVendorQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetVendorQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	q.vendorID = vendorID
	return nil
}
