package ports

import (
	"context"

	"shop/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for member aggregates.
type MemberRepository interface {
	// Add persists a new member and assigns its generated identifier.
	Add(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member by identifier.
	Get(ctx context.Context, id int64) (*member.Member, error)

	// GetAll retrieves all registered members ordered by identifier.
	GetAll(ctx context.Context) ([]*member.Member, error)
}
