package queries

import (
	"context"

	"gorm.io/gorm"

	"shop/internal/core/domain/model/kernel"
)

// GetAllMembersQueryHandler retrieves the member list from the database.
type GetAllMembersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMembersQueryHandler creates a handler for member listings.
// Requires a GORM database connection for query execution.
func NewGetAllMembersQueryHandler(db *gorm.DB) GetAllMembersQueryHandler {
	return GetAllMembersQueryHandler{db: db}
}

// Handle executes the query to retrieve all members, sorted by id for
// consistent output.
func (h GetAllMembersQueryHandler) Handle(
	ctx context.Context,
	query GetAllMembersQuery,
) ([]GetAllMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetAllMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			city,
			street,
			zipcode
		FROM members
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var memberResp GetAllMembersQueryResponse
		var city, street, zipcode string

		err = rows.Scan(
			&memberResp.ID,
			&memberResp.Name,
			&city,
			&street,
			&zipcode,
		)
		if err != nil {
			return nil, err
		}

		address, addrErr := kernel.NewAddress(city, street, zipcode)
		if addrErr != nil {
			return nil, addrErr
		}
		memberResp.Address = address
		members = append(members, memberResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
