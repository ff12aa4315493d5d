package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is written and read as one unit: the order row, its
// delivery, and its item lines.
type OrderRepository interface {
	// Add persists a new order aggregate (order, delivery, items) and
	// assigns the generated order identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Currently only the order status and delivery status can change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a complete order aggregate by identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllWithReadyDeliveryBefore retrieves orders whose delivery is still
	// Ready and which were placed before the cutoff. Used by the delivery
	// completion job.
	GetAllWithReadyDeliveryBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
