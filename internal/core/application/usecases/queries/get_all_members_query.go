package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var (
	ErrGetAllMembersQueryIsNotConstructed = errors.New(
		"GetAllMembersQuery must be created via NewGetAllMembersQuery constructor",
	)
)

// GetAllMembersQuery retrieves every registered member.
type GetAllMembersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllMembersQuery creates a parameterless query for the member list.
func NewGetAllMembersQuery() GetAllMembersQuery {
	return GetAllMembersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllMembersQueryIsNotConstructed if validation fails.
func (q GetAllMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMembersQueryIsNotConstructed)
}

// GetAllMembersQueryResponse represents one member in the listing.
type GetAllMembersQueryResponse struct {
	ID      int64
	Name    string
	Address kernel.Address
}
