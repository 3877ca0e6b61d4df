package commands

import (
	"context"

	"orderintake/internal/core/domain/model/vendor"
)

// RegisterVendorCommandHandler handles the business logic for vendor registration.
// Vendors must exist before they can submit orders; the unique-name constraint
// is enforced by the repository.
type RegisterVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewRegisterVendorCommandHandler creates a handler for vendor registration.
// Requires a VendorUoWFactory for transactional persistence.
func NewRegisterVendorCommandHandler(uowFactory VendorUoWFactory) RegisterVendorCommandHandler {
	return RegisterVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor registration command and returns the registered
// vendor. Returns errs.ErrObjectAlreadyExists if the name is already taken.
func (h *RegisterVendorCommandHandler) Handle(
	ctx context.Context, cmd RegisterVendorCommand,
) (*vendor.Vendor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newVendor, err := vendor.NewVendor(cmd.VendorID(), cmd.Name(), cmd.Email())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VendorRepository().Add(ctx, newVendor); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newVendor, nil
}
