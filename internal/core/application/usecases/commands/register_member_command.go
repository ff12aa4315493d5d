package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrRegisterMemberCommandIsNotConstructed = errors.New(
		"RegisterMemberCommand must be created via NewRegisterMemberCommand constructor",
	)
	ErrMemberNameIsRequired = errors.New("member name is required")
)

// RegisterMemberCommand represents a request to register a new shop member.
//
// Example:
//
//	address, _ := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
//	cmd, err := NewRegisterMemberCommand("kim", address)
//	if err != nil {
//	    return fmt.Errorf("invalid member data: %w", err)
//	}
//
//	handler := NewRegisterMemberCommandHandler(uowFactory)
//	memberID, err := handler.Handle(ctx, cmd)
type RegisterMemberCommand struct { //nolint:recvcheck //using for validation
	name    string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewRegisterMemberCommand creates a command to register a member.
// Validates that the name is not empty and the address is constructed.
func NewRegisterMemberCommand(name string, address kernel.Address) (RegisterMemberCommand, error) {
	memberCommand := RegisterMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		memberCommand.setName(name),
		memberCommand.setAddress(address),
	); err != nil {
		return RegisterMemberCommand{}, err
	}

	return memberCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterMemberCommandIsNotConstructed if validation fails.
func (c RegisterMemberCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMemberCommandIsNotConstructed)
}

// Name returns the member's display name.
func (c RegisterMemberCommand) Name() string {
	return c.name
}

// Address returns the member's home address.
func (c RegisterMemberCommand) Address() kernel.Address {
	return c.address
}

func (c *RegisterMemberCommand) setName(name string) error {
	if name == "" {
		return ErrMemberNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterMemberCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
