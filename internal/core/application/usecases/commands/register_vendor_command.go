package commands

import (
	"errors"
	"strings"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/pkg/guard"
)

var (
	ErrRegisterVendorCommandIsNotConstructed = errors.New(
		"RegisterVendorCommand must be created via NewRegisterVendorCommand constructor",
	)
	ErrVendorNameIsRequired = errors.New("vendor name is required")
)

// RegisterVendorCommand represents a request to register a new vendor.
// The vendor name must be unique across the system; the contact email
// is optional.
//
// Example:
//
//	cmd, err := NewRegisterVendorCommand(kernel.NewUUID(), "Acme Supplies", "sales@acme.test")
//	if err != nil {
//	    return fmt.Errorf("invalid vendor data: %w", err)
//	}
//
//	handler := NewRegisterVendorCommandHandler(uowFactory)
//	registered, err := handler.Handle(ctx, cmd)
type RegisterVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	name     string
	email    string

	guard guard.ConstructorGuard
}

// NewRegisterVendorCommand creates a command to register a new vendor.
// Validates that the vendor ID is valid and the name is non-blank.
func NewRegisterVendorCommand(vendorID kernel.UUID, name, email string) (RegisterVendorCommand, error) {
	vendorCommand := RegisterVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vendorCommand.setVendorID(vendorID),
		vendorCommand.setName(name),
		vendorCommand.setEmail(email),
	); err != nil {
		return RegisterVendorCommand{}, err
	}

	return vendorCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterVendorCommandIsNotConstructed if validation fails.
func (c RegisterVendorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVendorCommandIsNotConstructed)
}

// VendorID returns the unique identifier for the new vendor.
func (c RegisterVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the vendor's display name.
func (c RegisterVendorCommand) Name() string {
	return c.name
}

// Email returns the optional contact email.
func (c RegisterVendorCommand) Email() string {
	return c.email
}

func (c *RegisterVendorCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *RegisterVendorCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrVendorNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterVendorCommand) setEmail(email string) error {
	c.email = strings.TrimSpace(email)
	return nil
}
