package queries

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderView is the nested result DTO: one order with its item list
// flattened to the fields a listing needs. The address is the delivery's
// destination address.
type OrderView struct {
	OrderID    int64
	MemberName string
	OrderDate  time.Time
	Status     order.Status
	Address    kernel.Address
	Items      []OrderItemView
}

// OrderItemView is one order line within an OrderView.
type OrderItemView struct {
	ItemName   string
	OrderPrice int
	Count      int
}
