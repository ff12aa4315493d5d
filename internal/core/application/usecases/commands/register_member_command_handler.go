package commands

import (
	"context"

	"shop/internal/core/domain/model/member"
)

// RegisterMemberCommandHandler handles the business logic for member registration.
//
// Example:
//
//	handler := NewRegisterMemberCommandHandler(uowFactory)
//	address, _ := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
//	cmd, _ := NewRegisterMemberCommand("kim", address)
//
//	memberID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("member registration failed: %w", err)
//	}
type RegisterMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewRegisterMemberCommandHandler creates a handler for member registration.
// Requires a MemberUoWFactory for transactional persistence.
func NewRegisterMemberCommandHandler(uowFactory MemberUoWFactory) RegisterMemberCommandHandler {
	return RegisterMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the member registration command and returns the store
// assigned member id. Uses a transaction so the member is persisted or
// rolled back as a whole.
func (h *RegisterMemberCommandHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newMember, err := member.NewMember(cmd.Name(), cmd.Address())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()
	if err = memberRepo.Add(ctx, newMember); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newMember.ID(), nil
}
