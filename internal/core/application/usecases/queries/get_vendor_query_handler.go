package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderintake/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVendorQueryHandler retrieves a single vendor from the database.
type GetVendorQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorQueryHandler creates a handler for single-vendor queries.
func NewGetVendorQueryHandler(db *gorm.DB) GetVendorQueryHandler {
	return GetVendorQueryHandler{db: db}
}

// Handle executes the query to retrieve one vendor by ID.
// Returns errs.ErrObjectNotFound if the vendor does not exist.
func (h GetVendorQueryHandler) Handle(
	ctx context.Context,
	query GetVendorQuery,
) (*VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var resp VendorResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			email,
			created_at
		FROM vendors
		WHERE id = ?
	`, query.VendorID().Bytes()).Row()

	if err := row.Scan(&resp.Name, &resp.Email, &resp.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("vendor", query.VendorID().String())
		}
		return nil, err
	}

	resp.ID = query.VendorID()
	return &resp, nil
}
