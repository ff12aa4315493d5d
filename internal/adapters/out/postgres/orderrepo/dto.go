// Package orderrepo provides data transfer objects and mapping functions for
// order aggregate persistence. The aggregate spans three tables (orders,
// deliveries, order_items) written and read as one unit.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order roots.
type OrderDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Number     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	MemberID   int64     `gorm:"index"`
	DeliveryID int64
	Delivery   DeliveryDTO    `gorm:"foreignKey:DeliveryID"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID"`
	Status     string
	OrderedAt  time.Time
}

// TableName specifies the database table name for order roots.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the database structure for persisting deliveries.
type DeliveryDTO struct {
	ID      int64      `gorm:"primaryKey;autoIncrement"`
	Address AddressDTO `gorm:"embedded"`
	Status  string
}

// TableName specifies the database table name for deliveries.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// OrderItemDTO represents the database structure for persisting order lines.
type OrderItemDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	OrderID    int64 `gorm:"index"`
	ItemID     int64 `gorm:"index"`
	OrderPrice int
	Count      int
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents an embedded address within a row.
type AddressDTO struct {
	City    string
	Street  string
	Zipcode string
}

func fromDomain(aggregate *order.Order) OrderDTO {
	delivery := aggregate.Delivery()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, line := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:         line.ID(),
			OrderID:    aggregate.ID(),
			ItemID:     line.ItemID(),
			OrderPrice: line.OrderPrice(),
			Count:      line.Count(),
		})
	}

	return OrderDTO{
		ID:       aggregate.ID(),
		Number:   aggregate.Number(),
		MemberID: aggregate.MemberID(),
		Delivery: DeliveryDTO{
			ID: delivery.ID(),
			Address: AddressDTO{
				City:    delivery.Address().City(),
				Street:  delivery.Address().Street(),
				Zipcode: delivery.Address().Zipcode(),
			},
			Status: delivery.Status().String(),
		},
		DeliveryID: delivery.ID(),
		Items:      items,
		Status:     aggregate.Status().String(),
		OrderedAt:  aggregate.OrderedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	address, err := kernel.NewAddress(dto.Delivery.Address.City, dto.Delivery.Address.Street, dto.Delivery.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := order.ParseDeliveryStatus(dto.Delivery.Status)
	if err != nil {
		return nil, err
	}

	delivery, err := order.RestoreDelivery(dto.Delivery.ID, address, deliveryStatus)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, line := range dto.Items {
		restored, itemErr := order.RestoreOrderItem(line.ID, line.ItemID, line.OrderPrice, line.Count)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, restored)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, dto.Number, dto.MemberID, delivery, items, status, dto.OrderedAt)
}
