package order

import (
	"errors"

	"shop/internal/pkg/errs"
)

var (
	// ErrOrderItemIsNotConstructed is returned when an OrderItem was not
	// created through NewOrderItem or RestoreOrderItem.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")
)

// OrderItem is one line of an order. It references a catalog item and
// freezes the price and quantity at order-creation time; neither is ever
// recomputed from the catalog.
type OrderItem struct {
	id         int64
	itemID     int64
	orderPrice int
	count      int

	isConstructed bool
}

// NewOrderItem creates an order line with the price snapshot taken at
// placement time.
func NewOrderItem(itemID int64, orderPrice, count int) (*OrderItem, error) {
	oi := &OrderItem{isConstructed: true}

	if err := errors.Join(
		oi.setItemID(itemID),
		oi.setOrderPrice(orderPrice),
		oi.setCount(count),
	); err != nil {
		return nil, err
	}

	return oi, nil
}

// RestoreOrderItem reconstructs a persisted order line from storage.
func RestoreOrderItem(id, itemID int64, orderPrice, count int) (*OrderItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id)
	}

	oi, err := NewOrderItem(itemID, orderPrice, count)
	if err != nil {
		return nil, err
	}

	oi.id = id
	return oi, nil
}

// Validate ensures the OrderItem was created through a constructor.
func (oi *OrderItem) Validate() error {
	if oi == nil || !oi.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the order line's identifier, or 0 if not yet persisted.
func (oi *OrderItem) ID() int64 {
	return oi.id
}

// ItemID returns the referenced catalog item's identifier.
func (oi *OrderItem) ItemID() int64 {
	return oi.itemID
}

// OrderPrice returns the per-unit price frozen at placement time.
func (oi *OrderItem) OrderPrice() int {
	return oi.orderPrice
}

// Count returns the ordered quantity.
func (oi *OrderItem) Count() int {
	return oi.count
}

// TotalPrice returns the line total (order price times count).
func (oi *OrderItem) TotalPrice() int {
	return oi.orderPrice * oi.count
}

func (oi *OrderItem) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsOutOfRangeError("itemID", itemID)
	}
	oi.itemID = itemID
	return nil
}

func (oi *OrderItem) setOrderPrice(orderPrice int) error {
	if orderPrice < 0 {
		return errs.NewValueIsOutOfRangeError("orderPrice", orderPrice)
	}
	oi.orderPrice = orderPrice
	return nil
}

func (oi *OrderItem) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsOutOfRangeError("count", count)
	}
	oi.count = count
	return nil
}
