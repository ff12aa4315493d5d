package kernel

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrAddressIsNotConstructed is returned when an Address was not created
	// through the NewAddress constructor.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
)

// Address is an immutable value object describing a postal address.
// It has no identity of its own: two addresses with the same city, street,
// and zipcode are the same address. It is embedded by members (home address)
// and deliveries (destination address).
type Address struct {
	city    string
	street  string
	zipcode string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address, requiring every component to be non-empty.
func NewAddress(city, street, zipcode string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setCity(city),
		address.setStreet(street),
		address.setZipcode(zipcode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// IsEqual compares two addresses component-wise.
func (a Address) IsEqual(other Address) bool {
	return a.city == other.city && a.street == other.street && a.zipcode == other.zipcode
}

// City returns the city component.
func (a Address) City() string {
	return a.city
}

// Street returns the street component.
func (a Address) Street() string {
	return a.street
}

// Zipcode returns the zipcode component.
func (a Address) Zipcode() string {
	return a.zipcode
}

// String formats the address as a single line.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.city, a.street, a.zipcode)
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setZipcode(zipcode string) error {
	if zipcode == "" {
		return errs.NewValueIsRequiredError("zipcode")
	}
	a.zipcode = zipcode
	return nil
}
