package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/lazy"
)

// OrderEntity is the entity-shaped result of the entity fetch modes: the
// order root with its associations as explicit lazy references. Whether a
// reference comes back loaded depends on the mode that produced it; touching
// an unloaded one is a visible Resolve call that costs a store round-trip.
type OrderEntity struct {
	ID        int64
	Number    uuid.UUID
	MemberID  int64
	Status    order.Status
	OrderedAt time.Time

	Member   lazy.Ref[MemberSummary]
	Delivery lazy.Ref[DeliverySummary]
	Items    lazy.Ref[[]OrderItemView]
}

// MemberSummary is the member projection carried by an OrderEntity.
type MemberSummary struct {
	ID      int64
	Name    string
	Address kernel.Address
}

// DeliverySummary is the delivery projection carried by an OrderEntity.
type DeliverySummary struct {
	ID      int64
	Status  order.DeliveryStatus
	Address kernel.Address
}

// View converts the entity to a nested OrderView, resolving whatever
// associations are still unloaded. On entities produced by the raw-entity
// mode this touches three references per entity; on fully joined entities
// it costs nothing.
func (e *OrderEntity) View(ctx context.Context) (OrderView, error) {
	m, err := e.Member.Resolve(ctx)
	if err != nil {
		return OrderView{}, err
	}

	d, err := e.Delivery.Resolve(ctx)
	if err != nil {
		return OrderView{}, err
	}

	items, err := e.Items.Resolve(ctx)
	if err != nil {
		return OrderView{}, err
	}

	return OrderView{
		OrderID:    e.ID,
		MemberName: m.Name,
		OrderDate:  e.OrderedAt,
		Status:     e.Status,
		Address:    d.Address,
		Items:      items,
	}, nil
}
