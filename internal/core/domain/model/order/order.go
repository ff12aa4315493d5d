package order

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an
	// order that already has a persistent identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")

	// ErrOrderItemsAreRequired is returned when an order is created with an
	// empty item list.
	ErrOrderItemsAreRequired = errors.New("an order must contain at least one item")
)

// Order is the aggregate root of the order graph: the root order row, the
// owning member reference, the owned delivery, and the ordered item lines.
//
// Invariants:
//   - exactly one member and one delivery per order
//   - the item list is non-empty once placed
//   - item prices and counts are frozen at placement time
//
// The association to the member is one-directional: the order holds the
// member id, the member holds nothing back.
type Order struct {
	id        int64
	number    uuid.UUID
	memberID  int64
	delivery  *Delivery
	items     []*OrderItem
	status    Status
	orderedAt time.Time

	isConstructed bool
}

// NewOrder places an order for a member: creates a Ready delivery to the
// given address and freezes the provided item lines. The persistent
// identifier is assigned by the repository on Add.
func NewOrder(memberID int64, deliveryAddress kernel.Address, items []*OrderItem) (*Order, error) {
	delivery, err := NewDelivery(deliveryAddress)
	if err != nil {
		return nil, err
	}

	o := &Order{
		number:        uuid.New(),
		delivery:      delivery,
		status:        Ordered,
		orderedAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setMemberID(memberID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs a persisted order aggregate from storage.
func RestoreOrder(
	id int64,
	number uuid.UUID,
	memberID int64,
	delivery *Delivery,
	items []*OrderItem,
	status Status,
	orderedAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := delivery.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		number:        number,
		delivery:      delivery,
		status:        status,
		orderedAt:     orderedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setMemberID(memberID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// AssignID sets the identifier generated by the store on first persistence.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", id)
	}

	o.id = id
	return nil
}

// ID returns the order's identifier, or 0 if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// Number returns the public order number exposed on the API surface.
func (o *Order) Number() uuid.UUID {
	return o.number
}

// MemberID returns the owning member's identifier.
func (o *Order) MemberID() int64 {
	return o.memberID
}

// Delivery returns the delivery owned by this order.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Items returns the ordered item lines.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// OrderedAt returns the placement timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// TotalPrice returns the sum of all line totals.
func (o *Order) TotalPrice() int {
	total := 0
	for _, item := range o.items {
		total += item.TotalPrice()
	}
	return total
}

// CompleteDelivery marks the owned delivery as carried out.
func (o *Order) CompleteDelivery() error {
	return o.delivery.Complete()
}

func (o *Order) setMemberID(memberID int64) error {
	if memberID <= 0 {
		return errs.NewValueIsOutOfRangeError("memberID", memberID)
	}
	o.memberID = memberID
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
