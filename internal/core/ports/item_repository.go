package ports

import (
	"context"

	"shop/internal/core/domain/model/item"
)

// ItemRepository defines the persistence contract for catalog items.
type ItemRepository interface {
	// Add persists a new catalog item and assigns its generated identifier.
	Add(ctx context.Context, aggregate *item.Item) error

	// Get retrieves a catalog item by identifier.
	Get(ctx context.Context, id int64) (*item.Item, error)

	// GetByIDs retrieves the catalog items with the given identifiers in one
	// query. Missing identifiers are simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) ([]*item.Item, error)

	// GetAll retrieves the whole catalog ordered by identifier.
	GetAll(ctx context.Context) ([]*item.Item, error)
}
