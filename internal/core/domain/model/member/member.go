// Package member provides the member aggregate: a registered customer with a
// name and a home address. Members own orders, but the relation is navigated
// one way only (order -> member); the member itself keeps no order list.
package member

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrMemberIsNotConstructed is returned when a Member was not created
	// through NewMember or RestoreMember.
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember constructor")

	// ErrMemberIDAlreadyAssigned is returned when AssignID is called on a
	// member that already has a persistent identifier.
	ErrMemberIDAlreadyAssigned = errors.New("member id is already assigned")
)

// Member represents a registered customer.
//
// A newly created member has no identifier until the repository persists it
// and assigns the generated one via AssignID. A member restored from storage
// always carries a positive identifier.
type Member struct {
	id      int64
	name    string
	address kernel.Address

	isConstructed bool
}

// NewMember creates a member pending persistence. The identifier is assigned
// by the repository on Add.
func NewMember(name string, address kernel.Address) (*Member, error) {
	m := &Member{isConstructed: true}

	if err := errors.Join(
		m.setName(name),
		m.setAddress(address),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember reconstructs a persisted member from storage.
func RestoreMember(id int64, name string, address kernel.Address) (*Member, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id)
	}

	m, err := NewMember(name, address)
	if err != nil {
		return nil, err
	}

	m.id = id
	return m, nil
}

// Validate ensures the Member was created through a constructor.
func (m *Member) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMemberIsNotConstructed
	}
	return nil
}

// AssignID sets the identifier generated by the store on first persistence.
func (m *Member) AssignID(id int64) error {
	if m.id != 0 {
		return ErrMemberIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id)
	}

	m.id = id
	return nil
}

// ID returns the member's identifier, or 0 if not yet persisted.
func (m *Member) ID() int64 {
	return m.id
}

// Name returns the member's name.
func (m *Member) Name() string {
	return m.name
}

// Address returns the member's home address.
func (m *Member) Address() kernel.Address {
	return m.address
}

func (m *Member) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m.address = address
	return nil
}
