// Package queries contains read-only operations over the order-intake data.
// Implements the Query side of the CQRS architecture: handlers read directly
// from the database with raw SQL and return plain response structs, bypassing
// the aggregate repositories.
package queries

import (
	"errors"
	"time"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/guard"
)

var ErrGetAllVendorsQueryIsNotConstructed = errors.New(
	"GetAllVendorsQuery must be created via NewGetAllVendorsQuery constructor",
)

// GetAllVendorsQuery retrieves all registered vendors.
//
// Example:
//
//	query := NewGetAllVendorsQuery()
//	handler := NewGetAllVendorsQueryHandler(db)
//
//	vendors, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list vendors: %w", err)
//	}
type GetAllVendorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVendorsQuery creates a query to retrieve all vendors.
// This is a parameterless query.
func NewGetAllVendorsQuery() GetAllVendorsQuery {
	return GetAllVendorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllVendorsQueryIsNotConstructed if validation fails.
func (q GetAllVendorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVendorsQueryIsNotConstructed)
}

// VendorResponse represents one vendor in query results.
type VendorResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
