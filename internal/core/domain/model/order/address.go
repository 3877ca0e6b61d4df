package order

import (
	"fmt"
	"strings"

	"orderintake/internal/pkg/errs"
)

// minPostalCodeLength is the minimum trimmed length of a postal code.
const minPostalCodeLength = 4

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress factory function.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress constructor",
)

// Address is the shipping destination of an order. It is a value object:
// all fields are trimmed, required, and immutable once constructed.
type Address struct {
	address    string
	city       string
	state      string
	postalCode string

	isConstructed bool
}

// NewAddress creates a validated shipping address.
// Every field must be non-blank after trimming; the postal code must keep at
// least 4 characters after trimming.
func NewAddress(address, city, state, postalCode string) (Address, error) {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	postalCode = strings.TrimSpace(postalCode)

	if address == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if state == "" {
		return Address{}, errs.NewValueIsRequiredError("state")
	}
	if postalCode == "" {
		return Address{}, errs.NewValueIsRequiredError("postal_code")
	}
	if len(postalCode) < minPostalCodeLength {
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"postal_code",
			fmt.Errorf("trimmed length %d is shorter than %d", len(postalCode), minPostalCodeLength),
		)
	}

	return Address{
		address:       address,
		city:          city,
		state:         state,
		postalCode:    postalCode,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street address line.
func (a Address) Street() string {
	return a.address
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state or region.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}
