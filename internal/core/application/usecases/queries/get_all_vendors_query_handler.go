package queries

import (
	"context"

	"orderintake/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVendorsQueryHandler retrieves registered vendors from the database.
type GetAllVendorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVendorsQueryHandler creates a handler for vendor listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllVendorsQueryHandler(db *gorm.DB) GetAllVendorsQueryHandler {
	return GetAllVendorsQueryHandler{db: db}
}

// Handle executes the query to retrieve all vendors.
// Results are sorted by name for consistent output; an empty list is not an error.
func (h GetAllVendorsQueryHandler) Handle(
	ctx context.Context,
	query GetAllVendorsQuery,
) ([]VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vendors := make([]VendorResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			created_at
		FROM vendors
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp VendorResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Email, &resp.CreatedAt); err != nil {
			return nil, err
		}

		vendorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = vendorID
		vendors = append(vendors, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}
